// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls", middleware.WithLogging(handler))

Each request gets an X-Request-ID (the caller's, or a fresh UUID) that is
echoed in the response and attached to both log lines. Completion logs
include the status code and duration_ms.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PATCH, OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Domain errors map onto status codes through WriteError:

	ValidationError → 400
	AuthError       → 401
	NotFoundError   → 404
	ConflictError   → 409
	anything else   → 500 (message hidden, error logged)

# Client IP Extraction

	ip := middleware.ClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
