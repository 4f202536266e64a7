// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for browser access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS. The request Origin is echoed back; without
one the wildcard is used and credentials are not allowed.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.BareError(w, http.StatusBadRequest, "Missing feature_id")

JSONErrors turns the mux's own 404 and 405 replies into
{"error": "Resource not found"} and {"error": "Method not allowed"}.

# Access Control

Whitelist checks the connection address against a fixed list and answers
403 {"error": "Unauthorized"} otherwise:

	handler = middleware.Whitelist(cfg.Whitelist)(handler)

RateLimiter gives each client IP a token bucket. The connection address is
used unless TrustProxy is set:

	rl := middleware.NewRateLimiter(cfg.VoteRate, cfg.VoteBurst)
	rl.TrustProxy = cfg.TrustProxy
	mux.HandleFunc("POST /features/{id}/vote", middleware.WithLogging(rl.Wrap(h.Vote)))

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
