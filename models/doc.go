// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and error types.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options ([]OptionInput{text, image})
  - RecordVoteRequest: option_id
  - RegisterRequest: full_name, email, phone, address, district
  - LoginRequest: email, password
  - ProfileUpdate: pointer fields, nil means "leave unchanged"
  - ConfirmVoteRequest: election_id, candidate_id
  - PasswordResetRequest: email

# Domain Types

  - Poll: question, ordered options, total_votes
  - PollOption: text, optional image, votes
  - PollResults / OptionResult: tallies with derived percentages
  - UserProfile: the session user, including voting history
  - VotingRecord: one append-only entry in a voting history
  - Election: catalog entry used to resolve election names

Poll and UserProfile provide Clone so stores can hand out copies that never
alias their internal snapshots.

# Errors

The domain error taxonomy, checked with errors.As:

  - ValidationError: malformed input (blank question, too few options)
  - NotFoundError: unknown poll, option, or email
  - ConflictError: duplicate email at registration
  - AuthError: no active session, or failed login lookup

# Constants

Verification status:

	StatusUnverified = "unverified"
	StatusPending    = "pending"
	StatusVerified   = "verified"

Login providers:

	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
*/
package models
