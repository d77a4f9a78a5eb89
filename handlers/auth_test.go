// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielhkuo/spots/models"
	"github.com/danielhkuo/spots/testutil"
)

func TestSignup(t *testing.T) {
	st := newMemStore()
	issuer := newTestIssuer()
	handler := NewAuthHandler(st, issuer)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{"valid signup", models.CredentialsRequest{Username: "alice", Password: "pw"}, http.StatusOK, ""},
		{"missing password", models.CredentialsRequest{Username: "bob"}, http.StatusBadRequest, "username and password required"},
		{"missing username", models.CredentialsRequest{Password: "pw"}, http.StatusBadRequest, "username and password required"},
		{"empty body", nil, http.StatusBadRequest, "username and password required"},
		{"username too long", models.CredentialsRequest{Username: strings.Repeat("u", 16), Password: "pw"}, http.StatusBadRequest, "username must be at most 15 characters"},
		{"password too long", models.CredentialsRequest{Username: "carol", Password: strings.Repeat("p", 73)}, http.StatusBadRequest, "password must be at most 72 characters"},
		{"invalid JSON", "not-an-object", http.StatusBadRequest, "invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/v1/auth/signup", tt.body, nil)
			w := serve(t, handler.Signup, req)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.AuthResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Username != "alice" || resp.UserID == 0 || resp.Token == "" {
				t.Errorf("Unexpected response: %+v", resp)
			}

			id, err := issuer.Verify(resp.Token)
			if err != nil {
				t.Fatalf("Token did not verify: %v", err)
			}
			if id != resp.UserID {
				t.Errorf("Token resolves to %d, want %d", id, resp.UserID)
			}

			stored, _ := st.UserByUsername(req.Context(), "alice")
			if stored.PasswordHash == "pw" {
				t.Error("Password stored in plain text")
			}
		})
	}
}

func TestSignup_UsernameTaken(t *testing.T) {
	st := newMemStore()
	handler := NewAuthHandler(st, newTestIssuer())

	req := testutil.MakeRequest("POST", "/api/v1/auth/signup", models.CredentialsRequest{Username: "dup", Password: "one"}, nil)
	testutil.AssertStatus(t, serve(t, handler.Signup, req), http.StatusOK)

	// Any password, same result
	for _, pw := range []string{"one", "two", "three"} {
		req := testutil.MakeRequest("POST", "/api/v1/auth/signup", models.CredentialsRequest{Username: "dup", Password: pw}, nil)
		testutil.AssertError(t, serve(t, handler.Signup, req), http.StatusBadRequest, "username taken")
	}

	// Case-sensitive handles
	req = testutil.MakeRequest("POST", "/api/v1/auth/signup", models.CredentialsRequest{Username: "DUP", Password: "x"}, nil)
	testutil.AssertStatus(t, serve(t, handler.Signup, req), http.StatusOK)
}

func TestSignin(t *testing.T) {
	st := newMemStore()
	issuer := newTestIssuer()
	handler := NewAuthHandler(st, issuer)

	signup := testutil.MakeRequest("POST", "/api/v1/auth/signup", models.CredentialsRequest{Username: "dana", Password: "secret"}, nil)
	w := serve(t, handler.Signup, signup)
	testutil.AssertStatus(t, w, http.StatusOK)
	var created models.AuthResponse
	testutil.AssertJSON(t, w, &created)

	tests := []struct {
		name           string
		body           models.CredentialsRequest
		expectedStatus int
		expectedError  string
	}{
		{"valid credentials", models.CredentialsRequest{Username: "dana", Password: "secret"}, http.StatusOK, ""},
		{"wrong password", models.CredentialsRequest{Username: "dana", Password: "Secret"}, http.StatusUnauthorized, "invalid username or password"},
		{"unknown user", models.CredentialsRequest{Username: "nobody", Password: "secret"}, http.StatusUnauthorized, "invalid username or password"},
		{"handle is case-sensitive", models.CredentialsRequest{Username: "Dana", Password: "secret"}, http.StatusUnauthorized, "invalid username or password"},
		{"missing password", models.CredentialsRequest{Username: "dana"}, http.StatusBadRequest, "username and password required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/v1/auth/signin", tt.body, nil)
			w := serve(t, handler.Signin, req)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.AuthResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.UserID != created.UserID || resp.Username != "dana" {
				t.Errorf("Unexpected response: %+v", resp)
			}
			id, err := issuer.Verify(resp.Token)
			if err != nil || id != created.UserID {
				t.Errorf("Signin token resolves to %d (%v), want %d", id, err, created.UserID)
			}
		})
	}
}

func TestAuth_StoreFailure(t *testing.T) {
	st := newMemStore()
	st.failWith = errors.New("connection reset")
	handler := NewAuthHandler(st, newTestIssuer())

	for name, h := range map[string]func(t *testing.T) int{
		"signup": func(t *testing.T) int {
			req := testutil.MakeRequest("POST", "/api/v1/auth/signup", models.CredentialsRequest{Username: "x", Password: "y"}, nil)
			return serve(t, handler.Signup, req).Code
		},
		"signin": func(t *testing.T) int {
			req := testutil.MakeRequest("POST", "/api/v1/auth/signin", models.CredentialsRequest{Username: "x", Password: "y"}, nil)
			return serve(t, handler.Signin, req).Code
		},
	} {
		t.Run(name, func(t *testing.T) {
			if code := h(t); code != http.StatusInternalServerError {
				t.Errorf("Expected 500, got %d", code)
			}
		})
	}
}
