// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/zap-roadmap/cliparse"
	"github.com/danielhkuo/zap-roadmap/db"
	"github.com/danielhkuo/zap-roadmap/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the ledger schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// every connection to :memory: is its own database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard site configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3000,
		APIURL:          "http://127.0.0.1:0",
		RefreshInterval: time.Hour,
		HTTPTimeout:     2 * time.Second,
		VoteRate:        1000,
		VoteBurst:       1000,
	}
}

// GetTestLedgerConfig returns a standard ledger configuration
func GetTestLedgerConfig() cliparse.LedgerConfig {
	return cliparse.LedgerConfig{
		Port:         5000,
		DatabaseURL:  ":memory:",
		DatabaseType: db.TypeSQLite,
	}
}

// TestFeatures returns a small roadmap for site tests
func TestFeatures() []models.Feature {
	return []models.Feature{
		{ID: 1, Name: "Nostr Wallet Connect", Description: "Connect apps", Status: models.StatusProgress, Target: 1000, LNURLP: "MTx7Af", LNURL: "LNURL1AAA", Comments: []string{}},
		{ID: 2, Name: "Native App", Description: "iOS and Android", Status: models.StatusPlanned, Target: 2000, LNURLP: "T7S7cy", LNURL: "LNURL1BBB", Comments: []string{}},
		{ID: 3, Name: "Chat", Description: "In-app chat", Status: models.StatusIdea, Target: 500, LNURLP: "LCXsAL", LNURL: "lightning:LNURL1CCC", Comments: []string{}},
	}
}

// FakeLedger is an in-memory stand-in for the ledger API. Fail* flags make
// the matching endpoint answer 500.
type FakeLedger struct {
	Server *httptest.Server

	mu            sync.Mutex
	payments      map[string][]models.Payment
	votes         map[int64]int64
	failPayments  map[string]bool
	failVotes     bool
	failVote      bool
	voteCalls     int
	paymentsCalls int
}

// NewFakeLedger starts a fake ledger server closed at test cleanup
func NewFakeLedger(t *testing.T) *FakeLedger {
	t.Helper()

	f := &FakeLedger{
		payments:     make(map[string][]models.Payment),
		votes:        make(map[int64]int64),
		failPayments: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /payments/{lnurlp}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.paymentsCalls++
		lnurlp := r.PathValue("lnurlp")
		if f.failPayments[lnurlp] {
			http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
			return
		}
		payments := f.payments[lnurlp]
		if payments == nil {
			payments = []models.Payment{}
		}
		writeJSON(w, payments)
	})
	mux.HandleFunc("GET /votes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failVotes {
			http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
			return
		}
		out := make(map[string]int64, len(f.votes))
		for id, n := range f.votes {
			out[strconv.FormatInt(id, 10)] = n
		}
		writeJSON(w, out)
	})
	mux.HandleFunc("POST /vote", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.voteCalls++
		if f.failVote {
			http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
			return
		}
		var req models.VoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FeatureID == nil {
			http.Error(w, `{"error":"Missing feature_id"}`, http.StatusBadRequest)
			return
		}
		f.votes[*req.FeatureID]++
		writeJSON(w, models.VoteResponse{Status: "success", Upvotes: f.votes[*req.FeatureID]})
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeLedger) URL() string { return f.Server.URL }

func (f *FakeLedger) SetPayments(lnurlp string, payments ...models.Payment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[lnurlp] = payments
}

func (f *FakeLedger) SetVotes(votes map[int64]int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.votes = votes
}

func (f *FakeLedger) FailPayments(lnurlp string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPayments[lnurlp] = fail
}

func (f *FakeLedger) FailVotes(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failVotes = fail
}

func (f *FakeLedger) FailVote(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failVote = fail
}

func (f *FakeLedger) VoteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.voteCalls
}

func (f *FakeLedger) PaymentsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paymentsCalls
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
