// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roadapi is the HTTP client for the payments and voting ledger.

	client := roadapi.New("https://roadapi.mybuho.de",
		roadapi.WithTimeout(10*time.Second),
		roadapi.WithFallback("http://localhost:5000"),
	)

	payments, err := client.Payments(ctx, "MTx7Af")
	votes, err := client.Votes(ctx)
	upvotes, err := client.Vote(ctx, 3)

# Errors

Transport failures are returned wrapped. A non-2xx status wraps ErrStatus
and an unexpected body shape wraps ErrMalformed:

	if errors.Is(err, roadapi.ErrStatus) { ... }

Payment records inside a valid array are read leniently: fractional
amounts are truncated and non-numeric ones count as zero.

Only the payments fetch uses the fallback base URL.
*/
package roadapi
