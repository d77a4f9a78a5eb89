// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request id comes from X-Request-ID or is
generated, and is echoed back in the response.

# Error Handling

Handlers return errors instead of writing them:

	mux.HandleFunc("GET /api/v1/spots/{id}",
		middleware.WithLogging(middleware.Handle(spotHandler.GetSpot)))

Handle passes any returned error to WriteError. An *apierr.Error is sent as
its status with {"error": message}. Any other error is logged and answered
with a 500 and an empty body, so internal details never reach the client.

# Authentication

RequireAuth checks the "token" header before the handler runs:

	middleware.RequireAuth(issuer, spotHandler.CreateSpot)

A missing token returns 401 "please sign in"; a token that fails
verification returns 403 "not permitted". Neither runs the handler. On
success the user id is available through middleware.UserID(r.Context()).

# CORS Middleware

Enable cross-origin requests for frontend access (github.com/go-chi/cors):

	handler := middleware.CORS(cfg.CORSOrigins)(mux)

Allows methods GET, POST, PUT, DELETE, OPTIONS and the token header.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)

	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return apierr.BadRequest("invalid JSON")
	}

Bodies are capped at 1 MiB. An empty body decodes to the zero value.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
