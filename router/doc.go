// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the spots API.

# Route Registration

NewRouter wires handlers onto an http.ServeMux and wraps it in CORS:

	handler := router.NewRouter(store.New(conn), cfg)

# Endpoints

Operational:

	GET /health - 200 "OK" after a database ping, 503 otherwise
	GET /       - Banner

Accounts (public):

	POST /api/v1/auth/signup - Create account, returns token
	POST /api/v1/auth/signin - Exchange credentials for token

Spots:

	GET    /api/v1/spots      - List all spots (public)
	GET    /api/v1/spots/{id} - One spot (public)
	POST   /api/v1/spots/new  - Create spot
	PUT    /api/v1/spots/{id} - Update note (owner only)
	DELETE /api/v1/spots/{id} - Delete spot (owner only)

Votes:

	POST /api/v1/spots/{id}/been  - "I've been here"
	POST /api/v1/spots/{id}/good  - "Good tip"
	GET  /api/v1/check/{id}/votes - Caller's votes on one spot
	GET  /api/v1/check/votes      - Every spot the caller voted on

Routes other than the public ones are wrapped in middleware.RequireAuth,
which reads the token header. Every API route goes through
middleware.WithLogging and middleware.Handle.
*/
package router
