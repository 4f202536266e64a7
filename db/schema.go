// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"regexp"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DriverName maps a database type to its database/sql driver name.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite:
		return "sqlite", nil
	case TypePostgres:
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// CreateSchema creates all tables needed for the ledger.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case TypeSQLite:
		ddl = sqliteSchema
	case TypePostgres:
		ddl = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// seq preserves arrival order; the ledger returns payments in it.
const postgresSchema = `
-- Payments
CREATE TABLE IF NOT EXISTS payment (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    lnurlp_id TEXT NOT NULL,
    amount BIGINT NOT NULL CHECK (amount >= 0),
    comment TEXT NOT NULL DEFAULT '',
    received_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_payment_lnurlp_id ON payment(lnurlp_id, seq);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    feature_id BIGINT PRIMARY KEY,
    count BIGINT NOT NULL DEFAULT 0 CHECK (count >= 0),
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const sqliteSchema = `
-- Payments
CREATE TABLE IF NOT EXISTS payment (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    lnurlp_id TEXT NOT NULL,
    amount INTEGER NOT NULL CHECK (amount >= 0),
    comment TEXT NOT NULL DEFAULT '',
    received_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_payment_lnurlp_id ON payment(lnurlp_id, seq);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    feature_id INTEGER PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

var numberedParam = regexp.MustCompile(`\$(\d+)`)

// Rebind rewrites postgres-style $N placeholders for the given database
// type. SQLite gets its native ?N form.
func Rebind(dbType, query string) string {
	if dbType != TypeSQLite {
		return query
	}
	return numberedParam.ReplaceAllString(query, "?${1}")
}
