// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package guard

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

const keyPrefix = "voted-feature-"

// markerMaxAge keeps the marker for roughly ten years.
const markerMaxAge = 10 * 365 * 24 * time.Hour

// Store is a string key-value store that outlives a single request.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Key returns the marker key for a feature.
func Key(featureID int64) string {
	return keyPrefix + strconv.FormatInt(featureID, 10)
}

// Guard records which features a visitor has already voted for.
// It is a convenience, not an integrity control.
type Guard struct {
	store Store
}

func New(s Store) Guard {
	return Guard{store: s}
}

// Voted reports whether the marker for featureID is present.
func (g Guard) Voted(featureID int64) bool {
	v, ok := g.store.Get(Key(featureID))
	return ok && v != ""
}

// Mark sets the marker for featureID. Markers are never cleared.
func (g Guard) Mark(featureID int64) {
	g.store.Set(Key(featureID), "true")
}

// MemoryStore keeps markers in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// CookieStore keeps markers in the visitor's cookie jar. Values set during
// the request are visible to later Gets on the same store.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	pending map[string]string
	secure  bool
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{
		r:       r,
		w:       w,
		pending: make(map[string]string),
		secure:  r.TLS != nil,
	}
}

func (c *CookieStore) Get(key string) (string, bool) {
	if v, ok := c.pending[key]; ok {
		return v, true
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c *CookieStore) Set(key, value string) {
	c.pending[key] = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(markerMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
