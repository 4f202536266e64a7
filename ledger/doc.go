// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger stores LNURLp payments and feature votes for the ledger
service.

	l := ledger.New(conn, db.TypeSQLite)

	id, err := l.SavePayment(ctx, "MTx7Af", ledger.MsatToSat(21000), "go")
	payments, err := l.Payments(ctx, "MTx7Af")

	count, err := l.Vote(ctx, 3)
	votes, err := l.Votes(ctx)

Payments come back in arrival order. Vote is a single upsert, so
concurrent votes for the same feature are never lost.
*/
package ledger
