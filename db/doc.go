// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the ledger's database schema.

# Schema Creation

CreateSchema initializes all required tables for SQLite or PostgreSQL:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - payment: One row per LNURLp payment, amount in sats
  - vote: Running upvote count per feature id

Payments are returned in arrival order (payment.seq).

# Placeholders

Queries are written with PostgreSQL $N placeholders. Rebind converts them
for SQLite:

	q := db.Rebind(dbType, "SELECT count FROM vote WHERE feature_id = $1")
*/
package db
