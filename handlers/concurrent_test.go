// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/zap-roadmap/testutil"
)

// TestConcurrentWebhooks verifies that simultaneous payments for one LNURLp
// are all stored
func TestConcurrentWebhooks(t *testing.T) {
	handler, l := newLedgerHandler(t)

	numPayments := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numPayments; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"lnurlp":"MTx7Af","amount":%d,"comment":"payer %d"}`, (idx+1)*1000, idx)
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.Webhook(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numPayments {
		t.Errorf("Expected %d successful webhooks, got %d", numPayments, successCount.Load())
	}

	payments, err := l.Payments(context.Background(), "MTx7Af")
	if err != nil {
		t.Fatalf("Failed to read payments: %v", err)
	}
	if len(payments) != numPayments {
		t.Errorf("Expected %d payments, got %d", numPayments, len(payments))
	}

	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	// 1+2+...+10 sats
	if total != 55 {
		t.Errorf("Expected 55 sats in total, got %d", total)
	}
}

// TestConcurrentLedgerVotes verifies that the vote counter never loses an
// increment under contention
func TestConcurrentLedgerVotes(t *testing.T) {
	handler, l := newLedgerHandler(t)

	numVoters := 25
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/vote", strings.NewReader(`{"feature_id":4}`))
			w := httptest.NewRecorder()
			handler.Vote(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d", w.Code)
			}
		}()
	}

	wg.Wait()

	votes, err := l.Votes(context.Background())
	if err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}
	if votes[4] != int64(numVoters) {
		t.Errorf("Expected %d votes, got %d", numVoters, votes[4])
	}
}

// TestConcurrentSiteVotes verifies that votes from many browsers each reach
// the ledger once and the store ends at the ledger's final count
func TestConcurrentSiteVotes(t *testing.T) {
	fx := newSiteFixture(t, testutil.TestFeatures())

	numBrowsers := 8
	var wg sync.WaitGroup

	for i := 0; i < numBrowsers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			fx.handler.VoteJSON(w, withID(httptest.NewRequest("POST", "/api/features/1/vote", nil), "1"))
			if w.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d", w.Code)
			}
		}()
	}

	wg.Wait()

	if fx.ledger.VoteCalls() != numBrowsers {
		t.Errorf("Expected %d ledger calls, got %d", numBrowsers, fx.ledger.VoteCalls())
	}
	f, _ := fx.store.Get(1)
	if f.Upvotes < 1 || f.Upvotes > int64(numBrowsers) {
		t.Errorf("Expected upvotes within 1..%d, got %d", numBrowsers, f.Upvotes)
	}
}
