// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package directory stores every known user in the app_user table.
//
// Emails are normalized (trimmed, lowercased) on write and lookup. Insert and
// Update report a taken email as ErrDuplicateEmail, recognising both the
// PostgreSQL (23505) and SQLite unique-constraint errors; lookups report
// ErrNotFound. SeedDemoUsers loads the two demo accounts on start-up.
package directory
