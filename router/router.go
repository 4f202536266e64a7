// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/zap-roadmap/cliparse"
	"github.com/danielhkuo/zap-roadmap/handlers"
	"github.com/danielhkuo/zap-roadmap/ledger"
	"github.com/danielhkuo/zap-roadmap/middleware"
	"github.com/danielhkuo/zap-roadmap/store"
	"github.com/danielhkuo/zap-roadmap/voting"
	"github.com/danielhkuo/zap-roadmap/web"
)

// NewRouter builds the roadmap site routes.
func NewRouter(st *store.Store, votes *voting.Service, api handlers.RawPaymentsSource, cfg cliparse.Config) (*http.ServeMux, error) {
	pages, err := web.New()
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	siteHandler := handlers.NewSiteHandler(st, votes, pages)
	proxyHandler := handlers.NewProxyHandler(api)
	voteLimit := middleware.NewRateLimiter(cfg.VoteRate, cfg.VoteBurst)
	voteLimit.TrustProxy = cfg.TrustProxy

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Roadmap page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(siteHandler.Index))
	mux.HandleFunc("GET /api/features", middleware.WithLogging(siteHandler.Features))

	// Voting (rate limited per client IP)
	mux.HandleFunc("POST /features/{id}/vote", middleware.WithLogging(voteLimit.Wrap(siteHandler.Vote)))
	mux.HandleFunc("POST /api/features/{id}/vote", middleware.WithLogging(voteLimit.Wrap(siteHandler.VoteJSON)))

	// Payment QR
	mux.HandleFunc("GET /features/{id}/qr", middleware.WithLogging(siteHandler.QR))
	mux.HandleFunc("GET /features/{id}/qr.png", middleware.WithLogging(siteHandler.QRImage))

	// Payments proxy for browsers
	payments := middleware.CORS(middleware.WithLogging(proxyHandler.Payments))
	mux.Handle("GET /api/payments/{lnurlp}", payments)
	mux.Handle("OPTIONS /api/payments/{lnurlp}", payments)

	return mux, nil
}

// NewLedgerRouter builds the payments and voting ledger API.
func NewLedgerRouter(l *ledger.Ledger, cfg cliparse.LedgerConfig) http.Handler {
	mux := http.NewServeMux()

	ledgerHandler := handlers.NewLedgerHandler(l)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /webhook", middleware.WithLogging(ledgerHandler.Webhook))
	mux.HandleFunc("GET /payments/{lnurlp}", middleware.WithLogging(ledgerHandler.Payments))
	mux.HandleFunc("POST /vote", middleware.WithLogging(ledgerHandler.Vote))
	mux.HandleFunc("GET /votes", middleware.WithLogging(ledgerHandler.Votes))

	return middleware.CORS(middleware.Whitelist(cfg.Whitelist)(middleware.JSONErrors(mux)))
}
