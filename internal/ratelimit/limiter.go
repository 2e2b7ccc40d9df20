// Package ratelimit implements the fixed-window counters guarding the
// submission pipeline. Windows are coarse and non-sliding: a burst straddling
// a window boundary can admit up to twice the nominal limit, which is an
// accepted trade-off for simplicity.
package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// FixedWindow counts requests per client key in discrete windows. Entries
// live in a TTL cache whose janitor evicts expired windows, so the store
// does not grow without bound across distinct identifiers.
type FixedWindow struct {
	mu      sync.Mutex
	entries *gocache.Cache
	max     int
	window  time.Duration
}

type entry struct {
	count   int
	resetAt time.Time
}

// NewFixedWindow creates a limiter admitting max requests per window per key.
func NewFixedWindow(max int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		entries: gocache.New(window, 10*time.Minute),
		max:     max,
		window:  window,
	}
}

// Allow records a request for key and reports whether it is admitted. When
// rejected, the second return value is how long the client must wait until
// the window resets.
func (fw *FixedWindow) Allow(key string) (bool, time.Duration) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := time.Now()

	if v, ok := fw.entries.Get(key); ok {
		e := v.(*entry)
		if now.Before(e.resetAt) {
			if e.count >= fw.max {
				return false, e.resetAt.Sub(now)
			}
			e.count++
			return true, 0
		}
	}

	// First request from this key, or the previous window has elapsed
	fw.entries.Set(key, &entry{count: 1, resetAt: now.Add(fw.window)}, fw.window)
	return true, 0
}

// Count returns the current window's count for key. Used by tests and the
// healthcheck, not by the admission path.
func (fw *FixedWindow) Count(key string) int {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	v, ok := fw.entries.Get(key)
	if !ok {
		return 0
	}
	e := v.(*entry)
	if time.Now().After(e.resetAt) {
		return 0
	}
	return e.count
}

// ClientKey derives the rate-limit key for a request: the first entry of
// X-Forwarded-For, then X-Real-IP, then an "unknown" sentinel.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); first != "" {
			return first
		}
	}
	if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
		return rip
	}
	return "unknown"
}
