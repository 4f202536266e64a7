// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/danielhkuo/zap-roadmap/models"
)

var (
	ErrStatus    = errors.New("unexpected response status")
	ErrMalformed = errors.New("malformed response body")
)

const maxBodyBytes = 4 << 20

// Client talks to the payments and voting ledger.
type Client struct {
	baseURL     string
	fallbackURL string
	httpClient  *http.Client
}

type Option func(*Client)

// WithFallback sets a second base URL tried when a payments fetch against
// the primary fails.
func WithFallback(baseURL string) Option {
	return func(c *Client) {
		c.fallbackURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Payments returns the payment records for an LNURLp id in ledger order.
func (c *Client) Payments(ctx context.Context, lnurlp string) ([]models.Payment, error) {
	body, err := c.PaymentsRaw(ctx, lnurlp)
	if err != nil {
		return nil, err
	}

	return decodePayments(lnurlp, body), nil
}

// decodePayments reads a payments array leniently. Fractional amounts are
// truncated and records whose amount is not a number count as zero.
func decodePayments(lnurlp string, body []byte) []models.Payment {
	payments := []models.Payment{}
	gjson.ParseBytes(body).ForEach(func(_, rec gjson.Result) bool {
		p := models.Payment{
			LNURLPID: rec.Get("lnurlp_id").String(),
			Comment:  rec.Get("comment").String(),
		}
		if amount := rec.Get("amount"); amount.Type == gjson.Number {
			p.Amount = amount.Int()
		} else if amount.Exists() {
			slog.Debug("non-numeric payment amount", "lnurlp", lnurlp, "value", amount.Raw)
		}
		payments = append(payments, p)
		return true
	})
	return payments
}

// PaymentsRaw returns the payments JSON exactly as the ledger sent it.
// The body is checked to be a JSON array.
func (c *Client) PaymentsRaw(ctx context.Context, lnurlp string) ([]byte, error) {
	path := "/payments/" + url.PathEscape(lnurlp)

	body, err := c.get(ctx, c.baseURL+path)
	if err != nil && c.fallbackURL != "" {
		slog.Warn("primary payments fetch failed, trying fallback", "lnurlp", lnurlp, "error", err)
		body, err = c.get(ctx, c.fallbackURL+path)
	}
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return nil, fmt.Errorf("payments %s: %w: expected array", lnurlp, ErrMalformed)
	}
	return body, nil
}

// Votes returns the vote count per feature id. Keys that are not integer
// ids and values that are not numbers are skipped.
func (c *Client) Votes(ctx context.Context) (map[int64]int64, error) {
	body, err := c.get(ctx, c.baseURL+"/votes")
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("votes: %w: invalid JSON", ErrMalformed)
	}
	result := gjson.ParseBytes(body)
	if !result.IsObject() {
		return nil, fmt.Errorf("votes: %w: expected object", ErrMalformed)
	}

	votes := make(map[int64]int64)
	result.ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.ParseInt(key.String(), 10, 64)
		if err != nil || value.Type != gjson.Number {
			slog.Debug("skipping vote entry", "key", key.String(), "value", value.Raw)
			return true
		}
		votes[id] = value.Int()
		return true
	})
	return votes, nil
}

// Vote records one upvote and returns the ledger's new count.
func (c *Client) Vote(ctx context.Context, featureID int64) (int64, error) {
	payload, err := json.Marshal(models.VoteRequest{FeatureID: &featureID})
	if err != nil {
		return 0, fmt.Errorf("encode vote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vote", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build vote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return 0, err
	}

	upvotes := gjson.GetBytes(body, "upvotes")
	if !upvotes.Exists() || upvotes.Type != gjson.Number {
		return 0, fmt.Errorf("vote: %w: missing upvotes", ErrMalformed)
	}
	return upvotes.Int(), nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: %w: %d", req.Method, req.URL.Path, ErrStatus, resp.StatusCode)
	}
	return body, nil
}
