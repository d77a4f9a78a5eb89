// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"

	"github.com/danielhkuo/spots/apierr"
)

// TokenHeader carries the bearer token verbatim, with no scheme prefix.
const TokenHeader = "token"

// TokenVerifier resolves a token to a user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user id stored by RequireAuth.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// RequireAuth runs next only for requests with a valid token.
// Missing token → 401 "please sign in"; invalid token → 403 "not permitted".
func RequireAuth(v TokenVerifier, next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			return apierr.Unauthenticated("please sign in")
		}

		userID, err := v.Verify(token)
		if err != nil {
			return &apierr.Error{Status: http.StatusForbidden, Message: "not permitted", Err: err}
		}

		return next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}
