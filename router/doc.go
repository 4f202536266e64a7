// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the roadmap site and the ledger.

# Site

NewRouter creates the site mux:

	mux, err := router.NewRouter(st, votes, client, cfg)

Endpoints:

	GET  /                       - Ranked roadmap page
	GET  /health                 - Liveness
	GET  /api/features           - Current feature list as JSON
	POST /features/{id}/vote     - Form vote, redirects to /
	POST /api/features/{id}/vote - JSON vote
	GET  /features/{id}/qr       - Payment QR dialog
	GET  /features/{id}/qr.png   - Payment QR image
	GET  /api/payments/{lnurlp}  - Ledger payments, CORS enabled

Both vote routes share one per-IP rate limiter.

# Ledger

NewLedgerRouter creates the ledger API:

	POST /webhook            - Record an LNURLp payment (amount in msat)
	GET  /payments/{lnurlp}  - Payments for one LNURLp id
	POST /vote               - Add one vote for a feature
	GET  /votes              - Vote counts by feature id

Unknown routes and methods answer JSON. When a whitelist is configured,
other client addresses get 403.
*/
package router
