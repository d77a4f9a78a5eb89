// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the spots API.

# Handler Types

Each handler is a struct holding the store interfaces it needs:

  - AuthHandler: Signup and signin
  - SpotHandler: Spot reads and owner-only writes
  - VoteHandler: "Been here" and "good tip" votes

*store.Store satisfies every interface, so the router passes the same value
to each constructor:

	spotHandler := handlers.NewSpotHandler(st)

# Errors

Handlers have the middleware.HandlerFunc signature and return errors instead
of writing them. Client-facing failures are *apierr.Error values; anything
else becomes a logged 500 in middleware.WriteError.

# Ownership

Update and delete only succeed for the spot's owner. The store checks this
inside a transaction with the row locked, so the handler only maps
store.ErrNotFound to 404 and store.ErrNotOwner to 403.

# Votes

Each user can vote once per kind per spot. The second attempt hits the
primary key and comes back as store.ErrDuplicate:

	POST /api/v1/spots/{id}/been → 403 "you have already reported being here"
	POST /api/v1/spots/{id}/good → 403 "you have already liked this tip"
*/
package handlers
