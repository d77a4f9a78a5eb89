// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/spots/apierr"
	"github.com/danielhkuo/spots/middleware"
	"github.com/danielhkuo/spots/models"
)

// UserStore is the credential store used by AuthHandler
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

// SpotStore is the entry store used by SpotHandler
type SpotStore interface {
	ListSpots(ctx context.Context) ([]models.SpotSummary, error)
	GetSpot(ctx context.Context, spotID int64) (models.SpotSummary, error)
	CreateSpot(ctx context.Context, userID int64, req models.CreateSpotRequest) (models.Spot, error)
	UpdateSpotNote(ctx context.Context, spotID, userID int64, note *string) (*string, error)
	DeleteSpot(ctx context.Context, spotID, userID int64) (string, error)
}

// VoteStore is the vote store used by VoteHandler
type VoteStore interface {
	AddVote(ctx context.Context, kind models.VoteKind, userID, spotID int64) error
	VoteStatus(ctx context.Context, userID, spotID int64) (models.VoteStatus, error)
	UserVotes(ctx context.Context, userID int64) (models.UserVotes, error)
}

// TokenIssuer mints tokens for signed-in users
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names in messages
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks struct tags and turns the first failure into a 400
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate request: %w", err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apierr.BadRequest(fe.Field() + " is required")
	case "max":
		return apierr.BadRequest(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "latitude", "longitude":
		return apierr.BadRequest(fmt.Sprintf("%s must be a valid %s", fe.Field(), fe.Tag()))
	default:
		return apierr.BadRequest(fe.Field() + " is invalid")
	}
}

// spotIDParam reads the {id} path value. Anything that cannot be a spot id
// is reported the same way as an id with no row.
func spotIDParam(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, spotNotFound(raw)
	}
	return id, nil
}

func spotNotFound(id any) error {
	return apierr.NotFound(fmt.Sprintf("Spot id %v does not exist", id))
}

// callerID returns the user id RequireAuth stored on the request
func callerID(r *http.Request) (int64, error) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		return 0, errors.New("no authenticated user in request context")
	}
	return id, nil
}
