// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zap-roadmap/models"
)

// FlashCookie carries one notice across a redirect.
const FlashCookie = "flash"

// SetFlash stores n for the next page view.
func SetFlash(w http.ResponseWriter, r *http.Request, n models.Notice) {
	raw, err := json.Marshal(n)
	if err != nil {
		slog.Error("failed to encode flash notice", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending notice, if any, and clears it.
func PopFlash(w http.ResponseWriter, r *http.Request) *models.Notice {
	c, err := r.Cookie(FlashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var n models.Notice
	if err := json.Unmarshal(raw, &n); err != nil || n.Title == "" {
		return nil
	}
	return &n
}
