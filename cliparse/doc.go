// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: user directory connection string (default: file:civicvote.db,
    required for postgres)
  - DataDir: badger directory for the session slot and documents
    (default: .civicvote, "-" for in-memory)
  - DemoEmail: profile assigned by provider logins (default: jane@example.com)
  - SeedDemo: seed demo users and the featured election poll (default: true)
  - Latency: simulate network latency on account operations (default: false)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--data-dir    Storage directory
	--demo-email  Provider login profile
	--seed        true/false
	--latency     true/false

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	DATA_DIR         → --data-dir
	DEMO_EMAIL       → --demo-email
	SEED_DEMO        → --seed
	SIMULATE_LATENCY → --latency

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded (github.com/joho/godotenv) before either is
read; it never overrides variables that are already set.
*/
package cliparse
