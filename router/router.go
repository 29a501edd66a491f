// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/civic-vote/handlers"
	"github.com/danielhkuo/civic-vote/middleware"
	"github.com/danielhkuo/civic-vote/pollstore"
	"github.com/danielhkuo/civic-vote/session"
)

// Deps are the services the routes are served from
type Deps struct {
	Polls   *pollstore.Store
	Session *session.Session
	// DB is pinged by /health when set
	DB *sql.DB
	// Gatherer backs /metrics when set
	Gatherer prometheus.Gatherer
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(deps.Polls)
	votingHandler := handlers.NewVotingHandler(deps.Polls)
	resultsHandler := handlers.NewResultsHandler(deps.Polls)
	accountHandler := handlers.NewAccountHandler(deps.Session)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if deps.DB != nil {
			if err := deps.DB.PingContext(r.Context()); err != nil {
				slog.Error("health check failed", "error", err)
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if deps.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	// Polls
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/summary", middleware.WithLogging(pollHandler.Summary))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.RecordVote))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Account session
	mux.HandleFunc("POST /account/register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /account/login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("POST /account/login/{provider}", middleware.WithLogging(accountHandler.LoginWithProvider))
	mux.HandleFunc("POST /account/logout", middleware.WithLogging(accountHandler.Logout))
	mux.HandleFunc("GET /account/me", middleware.WithLogging(accountHandler.GetMe))
	mux.HandleFunc("PATCH /account/profile", middleware.WithLogging(accountHandler.UpdateProfile))
	mux.HandleFunc("POST /account/verify", middleware.WithLogging(accountHandler.SubmitVerification))
	mux.HandleFunc("POST /account/votes", middleware.WithLogging(accountHandler.ConfirmVote))
	mux.HandleFunc("POST /account/password-reset", middleware.WithLogging(accountHandler.RequestPasswordReset))

	// Election catalog
	mux.HandleFunc("GET /elections", middleware.WithLogging(handlers.ListElections))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("civic-vote API v1"))
	})

	return mux
}
