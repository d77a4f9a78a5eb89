// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spots/apierr"
	"github.com/danielhkuo/spots/auth"
	"github.com/danielhkuo/spots/middleware"
	"github.com/danielhkuo/spots/models"
	"github.com/danielhkuo/spots/store"
)

type AuthHandler struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthHandler(users UserStore, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func parseCredentials(r *http.Request) (models.CredentialsRequest, error) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return req, apierr.BadRequest("invalid JSON")
	}
	if req.Username == "" || req.Password == "" {
		return req, apierr.BadRequest("username and password required")
	}
	return req, nil
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) error {
	req, err := parseCredentials(r)
	if err != nil {
		return err
	}
	if err := validateRequest(&req); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return apierr.BadRequest("password must be at most 72 bytes")
	}
	if err != nil {
		return err
	}

	// The unique constraint on username is the only uniqueness check
	user, err := h.users.CreateUser(r.Context(), req.Username, hash)
	if errors.Is(err, store.ErrDuplicate) {
		return apierr.BadRequest("username taken")
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	slog.Info("user signed up", "user_id", user.ID)

	return h.respondWithToken(w, user)
}

// Signin handles POST /api/v1/auth/signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) error {
	req, err := parseCredentials(r)
	if err != nil {
		return err
	}

	// Unknown user and wrong password must look identical to the caller
	invalid := apierr.Unauthorized("invalid username or password")

	user, err := h.users.UserByUsername(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		auth.BurnPasswordCheck(req.Password)
		return invalid
	}
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return invalid
	}

	return h.respondWithToken(w, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user models.User) error {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
	return nil
}
