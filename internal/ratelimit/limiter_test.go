package ratelimit_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tropicacao/leads-api/internal/ratelimit"
)

func TestFixedWindow_AdmitsUpToMax(t *testing.T) {
	fw := ratelimit.NewFixedWindow(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := fw.Allow("10.0.0.1")
		require.True(t, allowed, "request %d should be admitted", i+1)
	}

	allowed, retryAfter := fw.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}

func TestFixedWindow_KeysAreIndependent(t *testing.T) {
	fw := ratelimit.NewFixedWindow(1, time.Minute)

	allowed, _ := fw.Allow("10.0.0.1")
	require.True(t, allowed)
	allowed, _ = fw.Allow("10.0.0.1")
	require.False(t, allowed)

	allowed, _ = fw.Allow("10.0.0.2")
	assert.True(t, allowed, "a different client must not share the window")
}

func TestFixedWindow_ResetsAfterWindow(t *testing.T) {
	fw := ratelimit.NewFixedWindow(1, 50*time.Millisecond)

	allowed, _ := fw.Allow("10.0.0.1")
	require.True(t, allowed)
	allowed, _ = fw.Allow("10.0.0.1")
	require.False(t, allowed)

	time.Sleep(60 * time.Millisecond)

	allowed, _ = fw.Allow("10.0.0.1")
	assert.True(t, allowed, "window expiry must reset the counter")
	assert.Equal(t, 1, fw.Count("10.0.0.1"))
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "forwarded chain uses first hop",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7, 198.51.100.1", "X-Real-IP": "198.51.100.1"},
			expected: "203.0.113.7",
		},
		{
			name:     "real ip fallback",
			headers:  map[string]string{"X-Real-IP": "198.51.100.1"},
			expected: "198.51.100.1",
		},
		{
			name:     "no headers",
			headers:  map[string]string{},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/v1/leads", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, ratelimit.ClientKey(r))
		})
	}
}
