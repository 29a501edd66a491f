// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the civic-vote API.

# Handler Types

  - PollHandler: Poll creation, listing and summary
  - VotingHandler: Recording votes
  - ResultsHandler: Rounded percentage results
  - AccountHandler: The signed-in user's session and profile
  - ListElections: The election catalog

Poll handlers share a *pollstore.Store; the account handler wraps a
*session.Session:

	pollHandler := handlers.NewPollHandler(store)
	accountHandler := handlers.NewAccountHandler(sess)

# Errors

Domain errors are written through middleware.WriteError, which maps
validation failures to 400, missing sessions to 401, unknown polls or
options to 404 and duplicate emails to 409.

# Identity Documents

POST /account/verify takes a multipart form with the file in the
"document" field. The upload is stored and the profile moves to pending.
*/
package handlers
