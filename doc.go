// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the spots API server.

Spots is a shared list of places. Signed-in users post a spot with a short
note, and anyone can read them. Other users mark a spot as "been here" or
"good tip", once each.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... TOKEN_KEY=... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -token-key "..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - TOKEN_KEY (-token-key): Secret used to sign tokens

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - TOKEN_TTL (-token-ttl): Token lifetime (default: no expiry)
  - CORS_ORIGINS (-cors-origins): Allowed browser origins (default: *)

Migrations run at startup. SIGINT or SIGTERM drains in-flight requests
before exit.

# Architecture

  - handlers: HTTP request handlers (auth, spots, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, CORS, JSON helpers, auth guard, error translation
  - apierr: Errors that carry an HTTP status
  - store: SQL queries
  - models: Request/response types
  - auth: Tokens and password hashing
  - db: Schema migrations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
