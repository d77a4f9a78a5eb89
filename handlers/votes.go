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

var duplicateVoteMessages = map[models.VoteKind]string{
	models.VoteBeen: "you have already reported being here",
	models.VoteGood: "you have already liked this tip",
}

type VoteHandler struct {
	votes VoteStore
}

func NewVoteHandler(votes VoteStore) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// AddVote returns the handler for POST /api/v1/spots/{id}/been and /good
func (h *VoteHandler) AddVote(kind models.VoteKind) middleware.HandlerFunc {
	if !kind.Valid() {
		panic(fmt.Sprintf("handlers: unknown vote kind %q", kind))
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		userID, err := callerID(r)
		if err != nil {
			return err
		}
		spotID, err := spotIDParam(r)
		if err != nil {
			return err
		}

		err = h.votes.AddVote(r.Context(), kind, userID, spotID)
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return apierr.Forbidden(duplicateVoteMessages[kind])
		case errors.Is(err, store.ErrNotFound):
			return spotNotFound(spotID)
		case err != nil:
			return fmt.Errorf("add %s vote: %w", kind, err)
		}

		slog.Info("vote recorded", "kind", kind, "spot_id", spotID, "user_id", userID)

		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
			UserID: userID,
			SpotID: spotID,
			Kind:   kind,
		})
		return nil
	}
}

// VoteStatus handles GET /api/v1/check/{id}/votes
func (h *VoteHandler) VoteStatus(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}
	spotID, err := spotIDParam(r)
	if err != nil {
		return err
	}

	status, err := h.votes.VoteStatus(r.Context(), userID, spotID)
	if err != nil {
		return fmt.Errorf("vote status: %w", err)
	}

	middleware.JSONResponse(w, http.StatusOK, status)
	return nil
}

// UserVotes handles GET /api/v1/check/votes
func (h *VoteHandler) UserVotes(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	votes, err := h.votes.UserVotes(r.Context(), userID)
	if err != nil {
		return fmt.Errorf("user votes: %w", err)
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
	return nil
}
