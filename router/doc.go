// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the civic-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{
		Polls:    polls,
		Session:  sess,
		DB:       conn,
		Gatherer: registry,
	})

# Endpoints

Operational:

	GET /health  - OK, or 503 when the database is unreachable
	GET /metrics - Prometheus exposition (when a Gatherer is set)

Polls:

	POST /polls               - Create poll
	GET  /polls               - List polls, most recent first
	GET  /polls/summary       - Poll and vote totals
	GET  /polls/{id}          - Poll with vote counts
	POST /polls/{id}/votes    - Record one vote
	GET  /polls/{id}/results  - Rounded percentages

Account session:

	POST  /account/register           - Register and sign in
	POST  /account/login              - Sign in by email
	POST  /account/login/{provider}   - google or facebook
	POST  /account/logout             - Sign out
	GET   /account/me                 - Current profile
	PATCH /account/profile            - Partial profile update
	POST  /account/verify             - Upload identity document (multipart)
	POST  /account/votes              - Confirm an election vote
	POST  /account/password-reset     - Request a reset email

Elections:

	GET /elections - Election catalog
*/
package router
