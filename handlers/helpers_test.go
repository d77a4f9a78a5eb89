// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/spots/auth"
	"github.com/danielhkuo/spots/middleware"
)

const testTokenKey = "test-token-key"

func newTestIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer(testTokenKey, 0)
}

// serve runs h through the error translator
func serve(t *testing.T, h middleware.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	middleware.Handle(h)(w, req)
	return w
}

// asUser marks the request as authenticated, as RequireAuth would
func asUser(req *http.Request, userID int64) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func withSpotID(req *http.Request, id string) *http.Request {
	req.SetPathValue("id", id)
	return req
}
