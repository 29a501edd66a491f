// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the civic-vote API server.

civic-vote runs quick community polls with rounded live percentages and
keeps a single signed-in voter session with identity verification and a
voting history.

# Starting the Server

With no configuration it uses a local SQLite file and a .civicvote data
directory:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -data-dir /var/lib/civicvote

# Configuration

Flags win over environment variables, which win over a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:civicvote.db)
  - DATA_DIR (-data-dir): Badger directory, "-" for in-memory
  - DEMO_EMAIL (-demo-email): Profile used by provider logins
  - SEED_DEMO (-seed): Seed demo users and the featured election poll
  - SIMULATE_LATENCY (-latency): Delay account operations like a remote backend

# Architecture

  - pollstore: In-memory polls and vote tallies
  - session: The signed-in user and account operations
  - directory: Known users in SQL
  - kv: Badger-backed session slot and identity documents
  - elections: Election catalog and the featured ballot
  - handlers, router, middleware: HTTP surface
  - metrics: Prometheus counters
  - models, auth, db, cliparse: Shared types, ids, schema, configuration

See package documentation for each component.
*/
package main
