// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
	}{
		{"bad request", BadRequest("x"), http.StatusBadRequest},
		{"unauthenticated", Unauthenticated("x"), http.StatusUnauthorized},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized},
		{"forbidden", Forbidden("x"), http.StatusForbidden},
		{"not found", NotFound("x"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, "x", tt.err.Message)
		})
	}
}

func TestAs(t *testing.T) {
	cause := errors.New("boom")
	classified := &Error{Status: http.StatusForbidden, Message: "nope", Err: cause}
	wrapped := fmt.Errorf("handler: %w", classified)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, got.Status)
	assert.ErrorIs(t, wrapped, cause)

	_, ok = As(cause)
	assert.False(t, ok)
	_, ok = As(nil)
	assert.False(t, ok)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "404 gone", NotFound("gone").Error())
	e := &Error{Status: 500, Message: "m", Err: errors.New("c")}
	assert.Equal(t, "500 m: c", e.Error())
}
