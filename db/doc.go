// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema applies the embedded goose migrations in migrations/:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - goose tracks applied versions in
goose_db_version, and every statement also uses IF NOT EXISTS.

# Tables

  - users: Accounts (username unique, bcrypt password hash)
  - spots: Location entries owned by a user
  - been: "Been here" votes, one per (user, spot)
  - good: "Good tip" votes, one per (user, spot)

# Relationships

	users 1──* spots
	users *──* spots (via been)
	users *──* spots (via good)

Vote rows are deleted with their spot (ON DELETE CASCADE). Spots are not
deleted with their owner; no endpoint deletes users.

# Indexes

  - users.username (unique)
  - spots.user_id
  - spots.name (byte order, for listing)
  - been.spot_id, good.spot_id (vote counts)
*/
package db
