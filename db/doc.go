// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the user directory database and creates its schema.

# Connecting

Both SQLite (modernc.org/sqlite, pure Go) and PostgreSQL (lib/pq) are
supported:

	conn, err := db.Open(db.TypeSQLite, "file:civicvote.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: one row per known user; voting_history is a JSON array

Timestamps are stored as RFC 3339 text rather than driver-native types so
SQLite and PostgreSQL behave the same.

# Indexes

  - app_user.email (unique)
*/
package db
