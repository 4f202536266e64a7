// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

// emptyPayments is served whenever the ledger cannot be reached.
var emptyPayments = []byte("[]")

// RawPaymentsSource returns a ledger payments body verbatim.
type RawPaymentsSource interface {
	PaymentsRaw(ctx context.Context, lnurlp string) ([]byte, error)
}

type ProxyHandler struct {
	api RawPaymentsSource
}

func NewProxyHandler(api RawPaymentsSource) *ProxyHandler {
	return &ProxyHandler{api: api}
}

// Payments handles GET /api/payments/{lnurlp}. It always answers 200.
func (h *ProxyHandler) Payments(w http.ResponseWriter, r *http.Request) {
	lnurlp := r.PathValue("lnurlp")

	body, err := h.api.PaymentsRaw(r.Context(), lnurlp)
	if err != nil {
		slog.Warn("payments proxy failed", "lnurlp", lnurlp, "error", err)
		body = emptyPayments
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write payments", "error", err)
	}
}
