// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Feature status constants
const (
	StatusIdea     = "Idea"
	StatusPlanned  = "Planned"
	StatusProgress = "Progress"
	StatusLaunched = "Launched"
)

// Notice kinds
const (
	NoticeSuccess     = "success"
	NoticeDestructive = "destructive"
)

// Domain types

// Feature is a roadmap proposal. DonationTotal and Comments are derived from
// the payment ledger and are only ever replaced wholesale.
type Feature struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	Upvotes       int64    `json:"upvotes"`
	DonationTotal int64    `json:"donationTotal"`
	Target        int64    `json:"target"`
	LNURLP        string   `json:"lnurlp"`
	LNURL         string   `json:"lnurl"`
	Comments      []string `json:"comments"`
}

// Progress returns the funding progress in percent. It may exceed 100.
func (f Feature) Progress() float64 {
	if f.Target <= 0 {
		return 0
	}
	return float64(f.DonationTotal) / float64(f.Target) * 100
}

// Payment is a single Lightning payment recorded against an LNURLp id.
type Payment struct {
	LNURLPID string `json:"lnurlp_id,omitempty"`
	Amount   int64  `json:"amount"`
	Comment  string `json:"comment"`
}

// Notice is a transient user-facing message (toast).
type Notice struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Request types

type VoteRequest struct {
	FeatureID *int64 `json:"feature_id"`
}

// Amount is in millisatoshis as delivered by LNbits.
type WebhookRequest struct {
	LNURLP  string `json:"lnurlp"`
	Amount  *int64 `json:"amount"`
	Comment string `json:"comment"`
}

// Response types

type VoteResponse struct {
	Status  string `json:"status"`
	Upvotes int64  `json:"upvotes"`
}

type WebhookResponse struct {
	Status string `json:"status"`
}

type VoteActionResponse struct {
	Notice  Notice `json:"notice"`
	Upvotes int64  `json:"upvotes"`
}

type FeaturesResponse struct {
	Features    []Feature  `json:"features"`
	Refreshing  bool       `json:"refreshing"`
	Warning     *Notice    `json:"warning,omitempty"`
	RefreshedAt *time.Time `json:"refreshed_at,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
