// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and identity helpers.

# Identifiers

Polls, options, profiles, and stored documents get UUID-based ids:

	id := auth.NewID()
	userIDs := auth.PrefixedIDs("user") // "user-<uuid>"

Stores take an IDFunc so tests can inject deterministic ids.

# Emails

Directory lookups are case-insensitive:

	key := auth.NormalizeEmail(" Jane@Example.com ") // "jane@example.com"

# Providers

External login is limited to a fixed allow-list:

	auth.ValidProvider("google")   // true
	auth.ValidProvider("facebook") // true

No credential is ever verified; login is a directory lookup only.
*/
package auth
