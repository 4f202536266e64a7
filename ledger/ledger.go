// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/zap-roadmap/db"
	"github.com/danielhkuo/zap-roadmap/models"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

// MsatToSat converts a webhook amount in millisatoshis to whole sats,
// dropping any remainder.
func MsatToSat(msat int64) int64 {
	return msat / 1000
}

// Ledger records LNURLp payments and feature votes.
type Ledger struct {
	db     *sql.DB
	dbType string
	now    func() time.Time
}

func New(conn *sql.DB, dbType string) *Ledger {
	return &Ledger{db: conn, dbType: dbType, now: time.Now}
}

func (l *Ledger) q(query string) string {
	return db.Rebind(l.dbType, query)
}

// SavePayment appends a payment for lnurlp and returns its id.
func (l *Ledger) SavePayment(ctx context.Context, lnurlp string, amountSat int64, comment string) (string, error) {
	if amountSat < 0 {
		return "", ErrNegativeAmount
	}

	id := uuid.NewString()
	_, err := l.db.ExecContext(ctx, l.q(`
		INSERT INTO payment (id, lnurlp_id, amount, comment, received_at)
		VALUES ($1, $2, $3, $4, $5)
	`), id, lnurlp, amountSat, comment, l.now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert payment for %s: %w", lnurlp, err)
	}
	return id, nil
}

// Payments returns all payments for lnurlp in arrival order.
func (l *Ledger) Payments(ctx context.Context, lnurlp string) ([]models.Payment, error) {
	rows, err := l.db.QueryContext(ctx, l.q(`
		SELECT lnurlp_id, amount, comment
		FROM payment
		WHERE lnurlp_id = $1
		ORDER BY seq
	`), lnurlp)
	if err != nil {
		return nil, fmt.Errorf("query payments for %s: %w", lnurlp, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.LNURLPID, &p.Amount, &p.Comment); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

// Vote adds one upvote to featureID and returns the new count.
func (l *Ledger) Vote(ctx context.Context, featureID int64) (int64, error) {
	var count int64
	err := l.db.QueryRowContext(ctx, l.q(`
		INSERT INTO vote (feature_id, count, updated_at)
		VALUES ($1, 1, $2)
		ON CONFLICT (feature_id) DO UPDATE
		SET count = vote.count + 1, updated_at = excluded.updated_at
		RETURNING count
	`), featureID, l.now().UTC()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("record vote for %d: %w", featureID, err)
	}
	return count, nil
}

// Votes returns the count for every feature that has been voted on.
func (l *Ledger) Votes(ctx context.Context) (map[int64]int64, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT feature_id, count FROM vote`)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := make(map[int64]int64)
	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}
	return votes, nil
}
