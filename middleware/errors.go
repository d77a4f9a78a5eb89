// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spots/apierr"
	"github.com/danielhkuo/spots/models"
)

// HandlerFunc is an http.HandlerFunc that reports failure by returning an
// error instead of writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.HandlerFunc, sending any returned error to WriteError.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError is the terminal error stage. Classified errors get their status
// and {"error": message}; anything else is logged and answered with a bare 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if e, ok := apierr.As(err); ok {
		if e.Err != nil {
			slog.Debug("request rejected", "status", e.Status, "error", e.Err, "request_id", r.Header.Get(RequestIDHeader))
		}
		JSONResponse(w, e.Status, models.ErrorResponse{Error: e.Message})
		return
	}

	slog.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", r.Header.Get(RequestIDHeader),
		"error", err,
	)
	w.WriteHeader(http.StatusInternalServerError)
}
