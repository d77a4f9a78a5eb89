// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, with validator tags:

  - CredentialsRequest: username, password
  - CreateSpotRequest: name, address, lat, lng, note, date
  - UpdateNoteRequest: note

# Response Types

Types for JSON responses:

  - AuthResponse: token, user_id, username
  - UpdateNoteResponse: note
  - DeleteSpotResponse: removed
  - VoteResponse: user_id, spot_id, kind
  - VoteStatus: spot_id, beenHere, likedHere
  - UserVotes: beenArray, goodArray
  - ErrorResponse: error

# Domain Types

  - User: account row (the password hash is never serialized)
  - Spot: spot row with owner id
  - SpotSummary: spot with owner username and vote counts
  - Date: calendar date, "2006-01-02" on the wire and DATE in Postgres

# Constants

Vote kinds:

	VoteBeen = "been"
	VoteGood = "good"
*/
package models
