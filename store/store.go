// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/zap-roadmap/models"
)

// Snapshot is an immutable view of the store. Callers must not modify it;
// use Store.Features for a private copy.
type Snapshot struct {
	Features    []models.Feature
	Warning     *models.Notice
	RefreshedAt time.Time
}

// Store holds the ordered feature list. Reads are lock-free; writers are
// serialised and always publish a whole new list.
type Store struct {
	mu         sync.Mutex
	current    atomic.Pointer[Snapshot]
	refreshing atomic.Int32
}

// New creates a store seeded with features sorted by upvotes.
func New(seed []models.Feature) *Store {
	features := cloneFeatures(seed)
	SortByUpvotes(features)

	s := &Store{}
	s.current.Store(&Snapshot{Features: features})
	return s
}

// Snapshot returns the current snapshot without copying.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Features returns a deep copy of the current ordered list.
func (s *Store) Features() []models.Feature {
	return cloneFeatures(s.current.Load().Features)
}

// Get returns a copy of the feature with the given id.
func (s *Store) Get(id int64) (models.Feature, bool) {
	for _, f := range s.current.Load().Features {
		if f.ID == id {
			f.Comments = slices.Clone(f.Comments)
			return f, true
		}
	}
	return models.Feature{}, false
}

// Update applies fn to a private copy of the current list and publishes
// the result. Returning false from fn leaves the store untouched.
func (s *Store) Update(fn func(features []models.Feature) ([]models.Feature, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	next, ok := fn(cloneFeatures(prev.Features))
	if !ok {
		return false
	}

	s.current.Store(&Snapshot{
		Features:    next,
		Warning:     prev.Warning,
		RefreshedAt: prev.RefreshedAt,
	})
	return true
}

// CompleteRefresh publishes a refreshed list, clears any warning and
// stamps the refresh time.
func (s *Store) CompleteRefresh(fn func(features []models.Feature) []models.Feature, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	s.current.Store(&Snapshot{
		Features:    fn(cloneFeatures(prev.Features)),
		RefreshedAt: at,
	})
}

// SetWarning publishes a warning alongside the unchanged feature list.
func (s *Store) SetWarning(n *models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	s.current.Store(&Snapshot{
		Features:    prev.Features,
		Warning:     n,
		RefreshedAt: prev.RefreshedAt,
	})
}

// BeginRefresh marks a refresh as in flight. Call the returned func when
// it settles.
func (s *Store) BeginRefresh() func() {
	s.refreshing.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { s.refreshing.Add(-1) })
	}
}

// Refreshing reports whether any refresh is in flight.
func (s *Store) Refreshing() bool {
	return s.refreshing.Load() > 0
}

// SortByDonations orders features by donation total, highest first.
// Equal totals keep their relative order.
func SortByDonations(features []models.Feature) {
	slices.SortStableFunc(features, func(a, b models.Feature) int {
		return cmp.Compare(b.DonationTotal, a.DonationTotal)
	})
}

// SortByUpvotes orders features by upvotes, highest first.
// Equal counts keep their relative order.
func SortByUpvotes(features []models.Feature) {
	slices.SortStableFunc(features, func(a, b models.Feature) int {
		return cmp.Compare(b.Upvotes, a.Upvotes)
	})
}

func cloneFeatures(in []models.Feature) []models.Feature {
	out := make([]models.Feature, len(in))
	for i, f := range in {
		f.Comments = slices.Clone(f.Comments)
		if f.Comments == nil {
			f.Comments = []string{}
		}
		out[i] = f
	}
	return out
}
