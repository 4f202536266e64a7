// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/testutil"
)

func TestSats(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := Sats(tt.in); got != tt.want {
			t.Errorf("Sats(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAgo(t *testing.T) {
	if got := Ago(time.Time{}); got != "never" {
		t.Errorf("Expected 'never' for zero time, got %q", got)
	}
	if got := Ago(time.Now().Add(-3 * time.Minute)); got != "3 minutes ago" {
		t.Errorf("Expected '3 minutes ago', got %q", got)
	}
}

func TestRankClass(t *testing.T) {
	want := []string{"rank-gold", "rank-silver", "rank-bronze", "rank-other", "rank-other"}
	for i, w := range want {
		if got := RankClass(i); got != w {
			t.Errorf("RankClass(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[string]string{
		models.StatusIdea:     "status-idea",
		models.StatusPlanned:  "status-planned",
		models.StatusProgress: "status-progress",
		models.StatusLaunched: "status-launched",
		"Shipped":             "status-unknown",
	}
	for status, want := range tests {
		if got := StatusClass(status); got != want {
			t.Errorf("StatusClass(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		goal  int64
		want  string
	}{
		{"empty", 0, 1000, "0.0%"},
		{"partial", 250, 1000, "25.0%"},
		{"over target is capped", 5000, 1000, "100.0%"},
		{"no target", 10, 0, "0.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := models.Feature{DonationTotal: tt.total, Target: tt.goal}
			if got := BarWidth(f); got != tt.want {
				t.Errorf("BarWidth = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain words", "plain words"},
		{"Great feature!! <b>", "Great feature b"},
		{"snake_case 42", "snake_case 42"},
		{"zap 🚀", "zap "},
	}
	for _, tt := range tests {
		if got := CleanComment(tt.in); got != tt.want {
			t.Errorf("CleanComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	long := strings.Repeat("a", 250)
	if got := CleanComment(long); len(got) != 200 {
		t.Errorf("Expected 200 characters, got %d", len(got))
	}
}

func TestWalletURL(t *testing.T) {
	if got := string(WalletURL("LNURL1ABC")); got != "lightning:LNURL1ABC" {
		t.Errorf("Expected lightning: prefix, got %q", got)
	}
	if got := string(WalletURL("lightning:LNURL1ABC")); got != "lightning:LNURL1ABC" {
		t.Errorf("Expected unchanged value, got %q", got)
	}
}

func TestRenderIndex(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	features := testutil.TestFeatures()
	features[0].DonationTotal = 1500
	features[0].Upvotes = 12
	features[0].Comments = []string{"ship it!"}

	var buf bytes.Buffer
	err = r.Index(&buf, IndexPage{
		Features:   features,
		Refreshing: true,
		Warning:    &models.Notice{Kind: models.NoticeDestructive, Title: "Error updating donations", Description: "try later"},
		Notice:     &models.Notice{Kind: models.NoticeSuccess, Title: "Vote recorded", Description: "now 12"},
	})
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"Nostr Wallet Connect",
		"Updating...",
		"Error updating donations",
		"Vote recorded",
		"#1",
		"rank-gold",
		"status-progress",
		"1,500 / 1,000 sats",
		"width: 100.0%",
		`action="/features/1/vote"`,
		`href="/features/2/qr"`,
		`href="lightning:LNURL1AAA"`,
		"Comments (1)",
		"ship it",
		"No comments yet",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	if strings.Contains(html, "ship it!") {
		t.Error("Expected punctuation to be stripped from comments")
	}
	if strings.Contains(html, "updated") {
		t.Error("Refresh time should be hidden before the first refresh")
	}
}

func TestRenderIndex_Idle(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Index(&buf, IndexPage{Features: testutil.TestFeatures(), RefreshedAt: time.Now()}); err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "Updating...") {
		t.Error("Did not expect the updating badge")
	}
	if !strings.Contains(html, "updated now") {
		t.Error("Expected the refresh time")
	}
}

func TestRenderQR(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f := testutil.TestFeatures()[0]

	t.Run("image", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.QR(&buf, QRPage{Feature: f, Value: f.LNURL, Image: "data:image/png;base64,AAAA"})
		if err != nil {
			t.Fatalf("QR failed: %v", err)
		}
		html := buf.String()
		if !strings.Contains(html, `src="data:image/png;base64,AAAA"`) {
			t.Error("Expected data URL image")
		}
		if !strings.Contains(html, "LNURL: LNURL1AAA") {
			t.Error("Expected raw LNURL text")
		}
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.QR(&buf, QRPage{Feature: f, Value: f.LNURL, Error: "Failed to generate QR code: boom", Hint: "Try copying the LNURL instead"})
		if err != nil {
			t.Fatalf("QR failed: %v", err)
		}
		html := buf.String()
		if strings.Contains(html, "<img") {
			t.Error("Did not expect an image")
		}
		for _, want := range []string{"Failed to generate QR code: boom", "Try copying the LNURL instead", "LNURL: LNURL1AAA"} {
			if !strings.Contains(html, want) {
				t.Errorf("Expected page to contain %q", want)
			}
		}
	})
}

func TestFlash(t *testing.T) {
	notice := models.Notice{Kind: models.NoticeSuccess, Title: "Vote recorded", Description: "This feature now has 3 upvotes!"}

	w := httptest.NewRecorder()
	SetFlash(w, httptest.NewRequest("POST", "/features/1/vote", nil), notice)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != FlashCookie {
		t.Fatalf("Expected one flash cookie, got %v", cookies)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()

	got := PopFlash(w, req)
	if got == nil || *got != notice {
		t.Fatalf("Expected %+v, got %+v", notice, got)
	}

	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("Expected the flash cookie to be cleared, got %v", cleared)
	}
}

func TestPopFlash_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	if n := PopFlash(w, httptest.NewRequest("GET", "/", nil)); n != nil {
		t.Errorf("Expected no notice, got %+v", n)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("Did not expect cookies to be written")
	}
}

func TestPopFlash_Garbage(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookie, Value: "%%%not-base64"})

	if n := PopFlash(httptest.NewRecorder(), req); n != nil {
		t.Errorf("Expected no notice, got %+v", n)
	}
}
