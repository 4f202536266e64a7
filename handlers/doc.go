// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the roadmap site and
the ledger.

# Handler Types

  - SiteHandler: Roadmap page, feature JSON, vote actions and QR codes
  - ProxyHandler: Browser-facing copy of the ledger payments endpoint
  - LedgerHandler: Payment webhook, payment listing and vote counting

Handlers are created via constructor functions:

	siteHandler := handlers.NewSiteHandler(st, votes, pages)
	ledgerHandler := handlers.NewLedgerHandler(l)

# Voting Flow

Both vote routes go through voting.Service with a cookie-backed guard:

	POST /features/{id}/vote     → Vote (flash notice, 303 to /)
	POST /api/features/{id}/vote → VoteJSON

VoteJSON answers 200 on success, 409 when the browser already voted, 502
when the ledger failed and 404 for unknown features.

# Ledger

	POST /webhook           → Webhook (amount in msat, stored in sats)
	GET  /payments/{lnurlp} → Payments
	POST /vote              → Vote
	GET  /votes             → Votes

Ledger errors are {"error": "..."} bodies.
*/
package handlers
