// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/zap-roadmap/guard"
	"github.com/danielhkuo/zap-roadmap/middleware"
	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/qr"
	"github.com/danielhkuo/zap-roadmap/store"
	"github.com/danielhkuo/zap-roadmap/voting"
	"github.com/danielhkuo/zap-roadmap/web"
)

type SiteHandler struct {
	store  *store.Store
	voting *voting.Service
	pages  *web.Renderer
}

func NewSiteHandler(st *store.Store, vs *voting.Service, pages *web.Renderer) *SiteHandler {
	return &SiteHandler{store: st, voting: vs, pages: pages}
}

// Index handles GET /
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	page := web.IndexPage{
		Features:    snap.Features,
		Refreshing:  h.store.Refreshing(),
		Warning:     snap.Warning,
		Notice:      web.PopFlash(w, r),
		RefreshedAt: snap.RefreshedAt,
	}

	var buf bytes.Buffer
	if err := h.pages.Index(&buf, page); err != nil {
		slog.Error("failed to render index", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	writeHTML(w, buf.Bytes())
}

// Features handles GET /api/features
func (h *SiteHandler) Features(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	resp := models.FeaturesResponse{
		Features:   snap.Features,
		Refreshing: h.store.Refreshing(),
		Warning:    snap.Warning,
	}
	if !snap.RefreshedAt.IsZero() {
		at := snap.RefreshedAt
		resp.RefreshedAt = &at
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Vote handles POST /features/{id}/vote from the page form. The outcome is
// shown after the redirect.
func (h *SiteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := featureID(w, r)
	if !ok {
		return
	}

	outcome, err := h.voting.Vote(r.Context(), guard.New(guard.NewCookieStore(w, r)), id)
	if errors.Is(err, voting.ErrUnknownFeature) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature not found")
		return
	}

	web.SetFlash(w, r, outcome.Notice)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// VoteJSON handles POST /api/features/{id}/vote
func (h *SiteHandler) VoteJSON(w http.ResponseWriter, r *http.Request) {
	id, ok := featureID(w, r)
	if !ok {
		return
	}

	outcome, err := h.voting.Vote(r.Context(), guard.New(guard.NewCookieStore(w, r)), id)

	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, voting.ErrUnknownFeature):
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature not found")
		return
	case errors.Is(err, voting.ErrAlreadyVoted):
		status = http.StatusConflict
	default:
		status = http.StatusBadGateway
	}

	middleware.JSONResponse(w, status, models.VoteActionResponse{
		Notice:  outcome.Notice,
		Upvotes: outcome.Upvotes,
	})
}

// QR handles GET /features/{id}/qr
func (h *SiteHandler) QR(w http.ResponseWriter, r *http.Request) {
	f, ok := h.feature(w, r)
	if !ok {
		return
	}

	page := web.QRPage{Feature: f, Value: paymentValue(f)}
	png, err := qr.Encode(page.Value, qr.DefaultSize)
	if err != nil {
		slog.Warn("qr encoding failed", "feature_id", f.ID, "error", err)
		page.Error = err.Error()
		page.Hint = qr.FallbackHint
	} else {
		page.Image = web.ImageURL(png)
	}

	var buf bytes.Buffer
	if err := h.pages.QR(&buf, page); err != nil {
		slog.Error("failed to render qr page", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	writeHTML(w, buf.Bytes())
}

// QRImage handles GET /features/{id}/qr.png
func (h *SiteHandler) QRImage(w http.ResponseWriter, r *http.Request) {
	f, ok := h.feature(w, r)
	if !ok {
		return
	}

	png, err := qr.Encode(paymentValue(f), qr.DefaultSize)
	if err != nil {
		slog.Warn("qr encoding failed", "feature_id", f.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error()+". "+qr.FallbackHint)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		slog.Error("failed to write qr image", "feature_id", f.ID, "error", err)
	}
}

func (h *SiteHandler) feature(w http.ResponseWriter, r *http.Request) (models.Feature, bool) {
	id, ok := featureID(w, r)
	if !ok {
		return models.Feature{}, false
	}
	f, ok := h.store.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature not found")
		return models.Feature{}, false
	}
	return f, true
}

func featureID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid feature id")
		return 0, false
	}
	return id, true
}

// paymentValue prefers the LNURL and falls back to the LNURLp id
func paymentValue(f models.Feature) string {
	if f.LNURL != "" {
		return f.LNURL
	}
	return f.LNURLP
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}
