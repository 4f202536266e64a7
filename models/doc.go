// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared types of the roadmap site and the ledger.

# Features

A Feature is one roadmap proposal:

	type Feature struct {
		ID            int64
		Name          string
		Status        string // Idea, Planned, Progress, Launched
		Upvotes       int64  // authoritative value comes from the ledger
		DonationTotal int64  // derived from payments, never set directly
		Target        int64  // funding goal in sats
		LNURLP        string // ledger key for payments
		LNURL         string // payment address shown to the user
		Comments      []string
	}

Progress returns DonationTotal/Target in percent and may exceed 100.

# Payments

Payments are read from the ledger with GET /payments/{lnurlp}:

	[{"lnurlp_id": "MTx7Af", "amount": 100, "comment": "go"}]

Amounts are sats. A missing amount decodes as zero.

# Votes

	POST /vote  {"feature_id": 3}  → {"status": "success", "upvotes": 7}
	GET  /votes                    → {"1": 42, "3": 7}

# Notices

Notice carries the transient messages shown after a vote attempt or a
failed refresh. Kind is NoticeSuccess or NoticeDestructive.

# Error Response

	{"error": "Bad Request", "message": "Missing feature_id"}
*/
package models
