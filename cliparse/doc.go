// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns the site Config, ParseLedgerFlags the LedgerConfig:

	cliparse.LoadDotEnv(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Site Flags

	-p              Server port (default: 3000)
	-api            Ledger API base URL (default: https://roadapi.mybuho.de)
	-fallback-api   Second ledger URL tried for payments
	-refresh        Donation refresh interval (default: 10m)
	-timeout        Ledger request timeout (default: 10s)
	-vote-rate      Votes per second per client IP (default: 1)
	-vote-burst     Vote burst per client IP (default: 5)

# Ledger Flags

	-p          Server port (default: 5000)
	-d          Database URL (default for sqlite: file:ledger.db)
	-t          Database type, sqlite or postgres (default: sqlite)
	-whitelist  Comma separated client IPs; empty allows everyone

# Environment Variables

Flags fall back to environment variables:

	PORT                      → -p
	ROADMAP_API_URL           → -api
	ROADMAP_FALLBACK_API_URL  → -fallback-api
	REFRESH_INTERVAL          → -refresh
	HTTP_TIMEOUT              → -timeout
	VOTE_RATE                 → -vote-rate
	VOTE_BURST                → -vote-burst
	DATABASE_URL              → -d
	DATABASE_TYPE             → -t
	WHITELIST                 → -whitelist

CLI flags take precedence over environment variables. LoadDotEnv fills
the environment from a .env file without overriding variables that are
already set.

# Validation

ParseFlags rejects refresh intervals under one second and non-positive
vote limits. ParseLedgerFlags requires DATABASE_URL for postgres.
*/
package cliparse
