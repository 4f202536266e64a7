// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Zap roadmap site.

The site lists proposed wallet features ranked by community support. Each
feature collects Lightning donations through its own LNURL-pay link and can
be upvoted once per browser. Donation totals, comments and vote counts live
in the ledger service (cmd/ledger); the site only reads and forwards.

# Starting the Server

	go run . -api http://localhost:5000

Or with the environment (a .env file is read first if present):

	ROADMAP_API_URL=http://localhost:5000 PORT=3000 go run .

# Configuration

  - PORT (-p): Server port (default: 3000)
  - ROADMAP_API_URL (-api): Ledger base URL (default: https://roadapi.mybuho.de)
  - ROADMAP_FALLBACK_API_URL (-fallback-api): Second ledger for payment reads
  - REFRESH_INTERVAL (-refresh): Donation refresh interval (default: 10m)
  - HTTP_TIMEOUT (-timeout): Ledger request timeout (default: 10s)
  - VOTE_RATE, VOTE_BURST (-vote-rate, -vote-burst): Per-IP vote limits
  - LOG_LEVEL: debug, info, warn or error

# Architecture

  - catalog: The hardcoded feature list
  - store: Current ranked features, swapped atomically
  - refresh: Donation aggregation and the repeating schedule
  - voting, guard: Vote sync and the once-per-browser vote action
  - roadapi: Ledger HTTP client
  - qr: Payment URI and QR code rendering
  - web: Page templates and formatting
  - handlers, router, middleware: HTTP surface
  - ledger, db: Ledger storage used by cmd/ledger

See package documentation for each component.
*/
package main
