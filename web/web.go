// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/qr"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxCommentLen is the number of characters of a comment shown on a card
const maxCommentLen = 200

var commentStrip = regexp.MustCompile(`[^\w\s]`)

// IndexPage is the data for the roadmap page.
type IndexPage struct {
	Features    []models.Feature
	Refreshing  bool
	Warning     *models.Notice
	Notice      *models.Notice
	RefreshedAt time.Time
}

// QRPage is the data for a feature's payment dialog. Image is a data URL;
// when it is empty Error explains why.
type QRPage struct {
	Feature models.Feature
	Value   string
	Image   template.URL
	Error   string
	Hint    string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Index(w io.Writer, page IndexPage) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", page)
}

func (r *Renderer) QR(w io.Writer, page QRPage) error {
	return r.tmpl.ExecuteTemplate(w, "qr.html", page)
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"sats":        Sats,
		"ago":         Ago,
		"rank":        func(i int) int { return i + 1 },
		"rankClass":   RankClass,
		"statusClass": StatusClass,
		"barWidth":    BarWidth,
		"comment":     CleanComment,
		"walletURL":   WalletURL,
	}
}

// Sats formats an amount with thousands separators.
func Sats(n int64) string {
	return humanize.Comma(n)
}

// Ago renders t relative to now, or "never" for the zero time.
func Ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

// RankClass picks the badge style for a zero-based position.
func RankClass(i int) string {
	switch i {
	case 0:
		return "rank-gold"
	case 1:
		return "rank-silver"
	case 2:
		return "rank-bronze"
	default:
		return "rank-other"
	}
}

func StatusClass(status string) string {
	switch status {
	case models.StatusIdea:
		return "status-idea"
	case models.StatusPlanned:
		return "status-planned"
	case models.StatusProgress:
		return "status-progress"
	case models.StatusLaunched:
		return "status-launched"
	default:
		return "status-unknown"
	}
}

// BarWidth is the progress bar fill in percent, clamped to 0..100.
func BarWidth(f models.Feature) string {
	p := f.Progress()
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return fmt.Sprintf("%.1f%%", p)
}

// CleanComment keeps the first 200 characters of a comment and drops
// everything that is not a word character or whitespace.
func CleanComment(s string) string {
	runes := []rune(s)
	if len(runes) > maxCommentLen {
		runes = runes[:maxCommentLen]
	}
	return commentStrip.ReplaceAllString(string(runes), "")
}

// ImageURL wraps PNG bytes as a data URL usable in QRPage.Image.
func ImageURL(png []byte) template.URL {
	return template.URL(qr.DataURL(png))
}

// WalletURL is the lightning: link for a payment address. html/template
// would otherwise reject the scheme.
func WalletURL(value string) template.URL {
	return template.URL(qr.PaymentURI(value))
}
