// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "testing"

func TestFeatures_Valid(t *testing.T) {
	features := Features()
	if len(features) == 0 {
		t.Fatal("Expected a non-empty catalog")
	}

	seenIDs := make(map[int64]bool)
	seenLNURLP := make(map[string]bool)
	for _, f := range features {
		if seenIDs[f.ID] {
			t.Errorf("Duplicate feature id %d", f.ID)
		}
		seenIDs[f.ID] = true

		if seenLNURLP[f.LNURLP] {
			t.Errorf("Duplicate lnurlp %q", f.LNURLP)
		}
		seenLNURLP[f.LNURLP] = true

		if !ValidStatus(f.Status) {
			t.Errorf("Feature %d has invalid status %q", f.ID, f.Status)
		}
		if f.Target <= 0 {
			t.Errorf("Feature %d has non-positive target %d", f.ID, f.Target)
		}
		if f.Upvotes != 0 || f.DonationTotal != 0 {
			t.Errorf("Feature %d should start with zero upvotes and donations", f.ID)
		}
	}
}

func TestFeatures_ReturnsCopy(t *testing.T) {
	a := Features()
	a[0].Name = "changed"
	a[0].Comments = append(a[0].Comments, "x")

	b := Features()
	if b[0].Name == "changed" {
		t.Error("Features should return a fresh slice each call")
	}
	if len(b[0].Comments) != 0 {
		t.Error("Comments should not be shared between calls")
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Idea", true},
		{"Planned", true},
		{"Progress", true},
		{"Launched", true},
		{"launched", false},
		{"", false},
		{"Done", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
