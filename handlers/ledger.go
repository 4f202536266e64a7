// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zap-roadmap/ledger"
	"github.com/danielhkuo/zap-roadmap/middleware"
	"github.com/danielhkuo/zap-roadmap/models"
)

type LedgerHandler struct {
	ledger *ledger.Ledger
}

func NewLedgerHandler(l *ledger.Ledger) *LedgerHandler {
	return &LedgerHandler{ledger: l}
}

// Webhook handles POST /webhook
func (h *LedgerHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req models.WebhookRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		slog.Error("invalid webhook payload", "error", err)
		middleware.BareError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.LNURLP == "" {
		slog.Error("webhook missing lnurlp")
		middleware.BareError(w, http.StatusBadRequest, "Missing 'lnurlp' field")
		return
	}
	if req.Amount == nil {
		slog.Error("webhook missing amount", "lnurlp", req.LNURLP)
		middleware.BareError(w, http.StatusBadRequest, "'amount' field missing")
		return
	}
	if *req.Amount < 0 {
		middleware.BareError(w, http.StatusBadRequest, "'amount' must not be negative")
		return
	}

	amountSat := ledger.MsatToSat(*req.Amount)
	id, err := h.ledger.SavePayment(r.Context(), req.LNURLP, amountSat, req.Comment)
	if err != nil {
		slog.Error("failed to save payment", "lnurlp", req.LNURLP, "error", err)
		middleware.BareError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("payment received",
		"payment_id", id,
		"lnurlp", req.LNURLP,
		"amount_msat", *req.Amount,
		"amount_sat", amountSat,
	)

	middleware.JSONResponse(w, http.StatusOK, models.WebhookResponse{Status: "success"})
}

// Payments handles GET /payments/{lnurlp}
func (h *LedgerHandler) Payments(w http.ResponseWriter, r *http.Request) {
	lnurlp := r.PathValue("lnurlp")

	payments, err := h.ledger.Payments(r.Context(), lnurlp)
	if err != nil {
		slog.Error("failed to read payments", "lnurlp", lnurlp, "error", err)
		middleware.BareError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("returning payments", "lnurlp", lnurlp, "count", len(payments))
	middleware.JSONResponse(w, http.StatusOK, payments)
}

// Vote handles POST /vote
func (h *LedgerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.FeatureID == nil {
		middleware.BareError(w, http.StatusBadRequest, "Missing feature_id")
		return
	}

	count, err := h.ledger.Vote(r.Context(), *req.FeatureID)
	if err != nil {
		slog.Error("failed to record vote", "feature_id", *req.FeatureID, "error", err)
		middleware.BareError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("feature upvoted", "feature_id", *req.FeatureID, "total", count)
	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Status:  "success",
		Upvotes: count,
	})
}

// Votes handles GET /votes
func (h *LedgerHandler) Votes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.ledger.Votes(r.Context())
	if err != nil {
		slog.Error("failed to read votes", "error", err)
		middleware.BareError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, votes)
}
