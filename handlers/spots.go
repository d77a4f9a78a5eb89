// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spots/apierr"
	"github.com/danielhkuo/spots/middleware"
	"github.com/danielhkuo/spots/models"
	"github.com/danielhkuo/spots/store"
)

type SpotHandler struct {
	spots SpotStore
}

func NewSpotHandler(spots SpotStore) *SpotHandler {
	return &SpotHandler{spots: spots}
}

// ListSpots handles GET /api/v1/spots
func (h *SpotHandler) ListSpots(w http.ResponseWriter, r *http.Request) error {
	spots, err := h.spots.ListSpots(r.Context())
	if err != nil {
		return fmt.Errorf("list spots: %w", err)
	}

	middleware.JSONResponse(w, http.StatusOK, spots)
	return nil
}

// GetSpot handles GET /api/v1/spots/{id}
func (h *SpotHandler) GetSpot(w http.ResponseWriter, r *http.Request) error {
	spotID, err := spotIDParam(r)
	if err != nil {
		return err
	}

	spot, err := h.spots.GetSpot(r.Context(), spotID)
	if errors.Is(err, store.ErrNotFound) {
		return spotNotFound(spotID)
	}
	if err != nil {
		return fmt.Errorf("get spot: %w", err)
	}

	middleware.JSONResponse(w, http.StatusOK, spot)
	return nil
}

// CreateSpot handles POST /api/v1/spots/new
// The caller becomes the owner.
func (h *SpotHandler) CreateSpot(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	var req models.CreateSpotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return &apierr.Error{Status: http.StatusBadRequest, Message: "invalid JSON", Err: err}
	}
	if err := validateRequest(&req); err != nil {
		return err
	}

	spot, err := h.spots.CreateSpot(r.Context(), userID, req)
	if errors.Is(err, store.ErrNotFound) {
		// Token outlived its user
		return apierr.Forbidden("not permitted")
	}
	if err != nil {
		return fmt.Errorf("create spot: %w", err)
	}

	slog.Info("spot created", "spot_id", spot.ID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, spot)
	return nil
}

// UpdateSpot handles PUT /api/v1/spots/{id}
// Only the note can change, and only the owner can change it.
func (h *SpotHandler) UpdateSpot(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}
	spotID, err := spotIDParam(r)
	if err != nil {
		return err
	}

	var req models.UpdateNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return &apierr.Error{Status: http.StatusBadRequest, Message: "invalid JSON", Err: err}
	}
	if err := validateRequest(&req); err != nil {
		return err
	}

	note, err := h.spots.UpdateSpotNote(r.Context(), spotID, userID, req.Note)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return spotNotFound(spotID)
	case errors.Is(err, store.ErrNotOwner):
		return apierr.Forbidden("You may only update spots you created")
	case err != nil:
		return fmt.Errorf("update spot: %w", err)
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpdateNoteResponse{Note: note})
	return nil
}

// DeleteSpot handles DELETE /api/v1/spots/{id}
// Votes on the spot are deleted with it.
func (h *SpotHandler) DeleteSpot(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}
	spotID, err := spotIDParam(r)
	if err != nil {
		return err
	}

	name, err := h.spots.DeleteSpot(r.Context(), spotID, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return spotNotFound(spotID)
	case errors.Is(err, store.ErrNotOwner):
		return apierr.Forbidden("you may only delete spots you created")
	case err != nil:
		return fmt.Errorf("delete spot: %w", err)
	}

	slog.Info("spot deleted", "spot_id", spotID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteSpotResponse{Removed: name})
	return nil
}
