// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages the single signed-in user of a civic-vote process.

A Session holds at most one current profile. Every change is written to a
durable Slot before it becomes visible through Current, and profile changes
are mirrored into the user Directory so a later login sees them.

# Operations

	Register                    → new unverified profile, becomes current
	Login / LoginWithProvider   → load an existing profile
	Logout                      → clear the session (always succeeds locally)
	SubmitIdentityVerification  → store a document, status becomes pending
	UpdateProfile               → merge the provided fields
	ConfirmVote                 → append a voting record
	RequestPasswordReset        → check the email is known

Operations are serialised. Each may be delayed by a Latency entry; a
context cancelled during that delay returns ctx.Err() with nothing changed.

Failures are typed: *models.ValidationError, *models.ConflictError,
*models.AuthError and *models.NotFoundError. Use errors.As to inspect them.
*/
package session
