// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package refresh

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/store"
)

// PaymentSource fetches the payment records behind one LNURLp id.
type PaymentSource interface {
	Payments(ctx context.Context, lnurlp string) ([]models.Payment, error)
}

// Result summarises one tick.
type Result struct {
	Succeeded int
	Failed    int
	Committed bool
}

// Refresher recomputes donation totals and comments from the ledger.
type Refresher struct {
	store  *store.Store
	source PaymentSource
	now    func() time.Time
}

func NewRefresher(st *store.Store, source PaymentSource) *Refresher {
	return &Refresher{store: st, source: source, now: time.Now}
}

// UpdateWarning is published when a whole batch comes back empty.
var UpdateWarning = models.Notice{
	Kind:        models.NoticeDestructive,
	Title:       "Error updating donations",
	Description: "Failed to fetch latest donation data. Will try again later.",
}

type aggregate struct {
	total    int64
	comments []string
}

// Tick fetches payments for every feature concurrently and, once all
// fetches have settled, publishes the merged list sorted by donations.
// A feature whose fetch failed keeps its previous total and comments.
func (r *Refresher) Tick(ctx context.Context) Result {
	done := r.store.BeginRefresh()
	defer done()

	features := r.store.Snapshot().Features
	if len(features) == 0 {
		return Result{}
	}

	results := make([]*aggregate, len(features))
	var g errgroup.Group
	for i, f := range features {
		g.Go(func() error {
			payments, err := r.source.Payments(ctx, f.LNURLP)
			if err != nil {
				slog.Warn("payment fetch failed", "feature_id", f.ID, "lnurlp", f.LNURLP, "error", err)
				return nil
			}
			total, comments := Aggregate(payments)
			results[i] = &aggregate{total: total, comments: comments}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		slog.Info("refresh discarded", "error", err)
		return Result{Failed: len(features)}
	}

	byID := make(map[int64]*aggregate, len(features))
	for i, res := range results {
		if res != nil {
			byID[features[i].ID] = res
		}
	}

	res := Result{Succeeded: len(byID), Failed: len(features) - len(byID)}
	if len(byID) == 0 {
		slog.Error("refresh produced no results, keeping previous donations", "features", len(features))
		warning := UpdateWarning
		r.store.SetWarning(&warning)
		return res
	}

	r.store.CompleteRefresh(func(current []models.Feature) []models.Feature {
		for i := range current {
			if agg, ok := byID[current[i].ID]; ok {
				current[i].DonationTotal = agg.total
				current[i].Comments = agg.comments
			}
		}
		store.SortByDonations(current)
		return current
	}, r.now())
	res.Committed = true

	slog.Info("donations refreshed", "succeeded", res.Succeeded, "failed", res.Failed)
	return res
}

// Run is Tick shaped as a Loop task.
func (r *Refresher) Run(ctx context.Context) {
	r.Tick(ctx)
}

// Aggregate sums payment amounts and collects the non-blank comments in
// the order received.
func Aggregate(payments []models.Payment) (int64, []string) {
	var total int64
	comments := []string{}
	for _, p := range payments {
		total += p.Amount
		if strings.TrimSpace(p.Comment) != "" {
			comments = append(comments, p.Comment)
		}
	}
	return total, comments
}
