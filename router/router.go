// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/spots/auth"
	"github.com/danielhkuo/spots/cliparse"
	"github.com/danielhkuo/spots/handlers"
	"github.com/danielhkuo/spots/middleware"
	"github.com/danielhkuo/spots/models"
	"github.com/danielhkuo/spots/store"
)

const healthTimeout = 2 * time.Second

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	issuer := auth.NewTokenIssuer(cfg.TokenKey, cfg.TokenTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, issuer)
	spotHandler := handlers.NewSpotHandler(st)
	voteHandler := handlers.NewVoteHandler(st)

	public := func(h middleware.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.Handle(h))
	}
	private := func(h middleware.HandlerFunc) http.HandlerFunc {
		return public(middleware.RequireAuth(issuer, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/v1/auth/signup", public(authHandler.Signup))
	mux.HandleFunc("POST /api/v1/auth/signin", public(authHandler.Signin))

	// Spots (reads are public)
	mux.HandleFunc("GET /api/v1/spots", public(spotHandler.ListSpots))
	mux.HandleFunc("GET /api/v1/spots/{id}", public(spotHandler.GetSpot))
	mux.HandleFunc("POST /api/v1/spots/new", private(spotHandler.CreateSpot))
	mux.HandleFunc("PUT /api/v1/spots/{id}", private(spotHandler.UpdateSpot))
	mux.HandleFunc("DELETE /api/v1/spots/{id}", private(spotHandler.DeleteSpot))

	// Votes
	mux.HandleFunc("POST /api/v1/spots/{id}/been", private(voteHandler.AddVote(models.VoteBeen)))
	mux.HandleFunc("POST /api/v1/spots/{id}/good", private(voteHandler.AddVote(models.VoteGood)))
	mux.HandleFunc("GET /api/v1/check/{id}/votes", private(voteHandler.VoteStatus))
	mux.HandleFunc("GET /api/v1/check/votes", private(voteHandler.UserVotes))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("spots API v1"))
	})

	return middleware.CORS(cfg.CORSOrigins)(mux)
}
