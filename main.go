package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/civic-vote/cliparse"
	"github.com/danielhkuo/civic-vote/db"
	"github.com/danielhkuo/civic-vote/directory"
	"github.com/danielhkuo/civic-vote/elections"
	"github.com/danielhkuo/civic-vote/kv"
	"github.com/danielhkuo/civic-vote/metrics"
	"github.com/danielhkuo/civic-vote/middleware"
	"github.com/danielhkuo/civic-vote/pollstore"
	"github.com/danielhkuo/civic-vote/router"
	"github.com/danielhkuo/civic-vote/session"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the user directory database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Session slot and identity documents
	store, err := kv.Open(cfg.DataDir, slog.Default())
	if err != nil {
		slog.Error("kv store open failed", "error", err, "data_dir", cfg.DataDir)
		os.Exit(1)
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	users := directory.New(dbConn)
	polls := pollstore.New(pollstore.WithMetrics(m))

	if cfg.SeedDemo {
		if err := users.SeedDemoUsers(ctx); err != nil {
			slog.Error("seeding demo users failed", "error", err)
			os.Exit(1)
		}
		question, options := elections.FeaturedBallot()
		if _, err := polls.CreatePoll(question, options); err != nil {
			slog.Error("seeding featured poll failed", "error", err)
			os.Exit(1)
		}
	}

	var latency session.Latency
	if cfg.Latency {
		latency = session.DefaultLatency
	}

	sess, err := session.New(ctx, session.Config{
		Directory: users,
		Slot:      store.Slot(kv.SessionKey),
		Documents: store.Documents(),
		Latency:   latency,
		DemoEmail: cfg.DemoEmail,
		Metrics:   m,
	})
	if err != nil {
		slog.Error("session restore failed", "error", err)
		os.Exit(1)
	}

	mux := router.NewRouter(router.Deps{
		Polls:    polls,
		Session:  sess,
		DB:       dbConn,
		Gatherer: registry,
	})

	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
