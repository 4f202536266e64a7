// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/roadapi"
	"github.com/danielhkuo/zap-roadmap/testutil"
)

type stubRawPayments struct {
	body []byte
	err  error
}

func (s stubRawPayments) PaymentsRaw(ctx context.Context, lnurlp string) ([]byte, error) {
	return s.body, s.err
}

func TestProxyPayments_PassThrough(t *testing.T) {
	fake := testutil.NewFakeLedger(t)
	fake.SetPayments("MTx7Af",
		models.Payment{LNURLPID: "MTx7Af", Amount: 100, Comment: "go"},
		models.Payment{Amount: 5},
	)

	direct, err := http.Get(fake.URL() + "/payments/MTx7Af")
	if err != nil {
		t.Fatalf("Direct fetch failed: %v", err)
	}
	want, _ := io.ReadAll(direct.Body)
	direct.Body.Close()

	handler := NewProxyHandler(roadapi.New(fake.URL()))
	req := httptest.NewRequest("GET", "/api/payments/MTx7Af", nil)
	req.SetPathValue("lnurlp", "MTx7Af")
	w := httptest.NewRecorder()

	handler.Payments(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != string(want) {
		t.Errorf("Expected identical body %s, got %s", want, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
}

func TestProxyPayments_Failures(t *testing.T) {
	tests := []struct {
		name string
		src  RawPaymentsSource
	}{
		{"ledger error", stubRawPayments{err: errors.New("connection refused")}},
		{"malformed", stubRawPayments{err: roadapi.ErrMalformed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProxyHandler(tt.src)
			req := httptest.NewRequest("GET", "/api/payments/x", nil)
			req.SetPathValue("lnurlp", "x")
			w := httptest.NewRecorder()

			handler.Payments(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if body := strings.TrimSpace(w.Body.String()); body != "[]" {
				t.Errorf("Expected [], got %s", body)
			}
		})
	}
}

func TestProxyPayments_LedgerStatusError(t *testing.T) {
	fake := testutil.NewFakeLedger(t)
	fake.FailPayments("MTx7Af", true)

	handler := NewProxyHandler(roadapi.New(fake.URL()))
	req := httptest.NewRequest("GET", "/api/payments/MTx7Af", nil)
	req.SetPathValue("lnurlp", "MTx7Af")
	w := httptest.NewRecorder()

	handler.Payments(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "[]" {
		t.Errorf("Expected [], got %s", body)
	}
}
