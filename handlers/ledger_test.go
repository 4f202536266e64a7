// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/zap-roadmap/db"
	"github.com/danielhkuo/zap-roadmap/ledger"
	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/testutil"
)

func newLedgerHandler(t *testing.T) (*LedgerHandler, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(testutil.SetupTestDB(t), db.TypeSQLite)
	return NewLedgerHandler(l), l
}

func TestWebhook(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{"valid payment", `{"lnurlp":"MTx7Af","amount":21999,"comment":"go"}`, http.StatusOK, ""},
		{"no comment", `{"lnurlp":"MTx7Af","amount":1000}`, http.StatusOK, ""},
		{"missing lnurlp", `{"amount":1000}`, http.StatusBadRequest, "Missing 'lnurlp' field"},
		{"missing amount", `{"lnurlp":"MTx7Af"}`, http.StatusBadRequest, "'amount' field missing"},
		{"negative amount", `{"lnurlp":"MTx7Af","amount":-5}`, http.StatusBadRequest, "'amount' must not be negative"},
		{"invalid json", `{nope`, http.StatusBadRequest, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newLedgerHandler(t)

			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Webhook(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, resp.Error)
				}
				return
			}

			var resp models.WebhookResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Status != "success" {
				t.Errorf("Expected status success, got %q", resp.Status)
			}
		})
	}
}

func TestWebhook_StoresSats(t *testing.T) {
	handler, l := newLedgerHandler(t)

	body := `{"lnurlp":"MTx7Af","amount":21999,"comment":"first"}`
	w := httptest.NewRecorder()
	handler.Webhook(w, httptest.NewRequest("POST", "/webhook", strings.NewReader(body)))
	testutil.AssertStatus(t, w, http.StatusOK)

	payments, err := l.Payments(context.Background(), "MTx7Af")
	if err != nil {
		t.Fatalf("Payments failed: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("Expected 1 payment, got %d", len(payments))
	}
	if payments[0].Amount != 21 {
		t.Errorf("Expected 21 sats, got %d", payments[0].Amount)
	}
	if payments[0].Comment != "first" {
		t.Errorf("Expected comment 'first', got %q", payments[0].Comment)
	}
}

func TestLedgerPayments(t *testing.T) {
	handler, l := newLedgerHandler(t)

	t.Run("unknown id returns empty array", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/payments/nothing", nil)
		req.SetPathValue("lnurlp", "nothing")
		w := httptest.NewRecorder()

		handler.Payments(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("Expected [], got %s", body)
		}
	})

	t.Run("payments in arrival order", func(t *testing.T) {
		ctx := context.Background()
		for _, amount := range []int64{5, 7} {
			if _, err := l.SavePayment(ctx, "T7S7cy", amount, ""); err != nil {
				t.Fatalf("SavePayment failed: %v", err)
			}
		}

		req := httptest.NewRequest("GET", "/payments/T7S7cy", nil)
		req.SetPathValue("lnurlp", "T7S7cy")
		w := httptest.NewRecorder()

		handler.Payments(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var payments []models.Payment
		testutil.AssertJSON(t, w, &payments)
		if len(payments) != 2 || payments[0].Amount != 5 || payments[1].Amount != 7 {
			t.Errorf("Unexpected payments %+v", payments)
		}
		if payments[0].LNURLPID != "T7S7cy" {
			t.Errorf("Expected lnurlp_id T7S7cy, got %q", payments[0].LNURLPID)
		}
	})
}

func TestLedgerVote(t *testing.T) {
	handler, _ := newLedgerHandler(t)

	for _, body := range []string{`{}`, `{"feature_id":null}`, `not json`} {
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest("POST", "/vote", strings.NewReader(body)))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}

	for want := int64(1); want <= 2; want++ {
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest("POST", "/vote", strings.NewReader(`{"feature_id":3}`)))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.VoteResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Status != "success" || resp.Upvotes != want {
			t.Errorf("Expected success/%d, got %+v", want, resp)
		}
	}

	w := httptest.NewRecorder()
	handler.Votes(w, httptest.NewRequest("GET", "/votes", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var votes map[string]int64
	testutil.AssertJSON(t, w, &votes)
	if len(votes) != 1 || votes["3"] != 2 {
		t.Errorf("Expected {\"3\":2}, got %v", votes)
	}
}

func TestLedgerVotes_Empty(t *testing.T) {
	handler, _ := newLedgerHandler(t)

	w := httptest.NewRecorder()
	handler.Votes(w, httptest.NewRequest("GET", "/votes", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "{}" {
		t.Errorf("Expected {}, got %s", body)
	}
}
