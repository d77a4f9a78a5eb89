// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: PostgreSQL connection string (required)
  - TokenKey: Secret used to sign bearer tokens (required)
  - TokenTTL: Token lifetime (default: 0, tokens never expire)
  - CORSOrigins: Allowed browser origins (default: *)

# CLI Flags

	-p             Server port
	-d             Database URL
	--token-key    Token signing key
	--token-ttl    Token lifetime (Go duration, e.g. 72h)
	--cors-origins Comma-separated allowed origins

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	DATABASE_URL → -d
	TOKEN_KEY    → --token-key
	TOKEN_TTL    → --token-ttl
	CORS_ORIGINS → --cors-origins

CLI flags take precedence over environment variables. Call LoadEnvFile
before ParseFlags to pick up a local .env file; variables already present in
the environment are not overwritten.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - TOKEN_KEY must be provided
  - PORT must be a number in 1-65535
  - TOKEN_TTL must be a non-negative duration
*/
package cliparse
