package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterBurst(t *testing.T) {
	l := NewLimiter(5, 1.0, 0)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("client"), "request %d should be within burst", i+1)
	}
	assert.False(t, l.Allow("client"))
}

func TestLimiterRefill(t *testing.T) {
	l := NewLimiter(1, 100.0, 0)

	assert.True(t, l.Allow("client"))
	assert.False(t, l.Allow("client"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Allow("client"))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := NewLimiter(1, 0.001, 0)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	assert.Equal(t, 2, l.ActiveKeys())
}

func TestLimiterReset(t *testing.T) {
	l := NewLimiter(1, 0.001, 0)

	assert.True(t, l.Allow("client"))
	assert.False(t, l.Allow("client"))

	l.Reset("client")
	assert.True(t, l.Allow("client"))
}

func TestMiddlewarePerIP(t *testing.T) {
	config := DefaultConfig()
	config.GlobalEnabled = false
	config.PerIPCapacity = 2
	config.PerIPRefillRate = 0.001
	mw := NewMiddleware(config)

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/roles", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// A different client is not affected.
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestMiddlewareEndpointLimit(t *testing.T) {
	config := DefaultConfig()
	config.GlobalEnabled = false
	config.PerIPEnabled = false
	config.EndpointLimits = map[string]EndpointLimit{
		"POST /roles/bulk/delete": {Capacity: 1, RefillRate: 0.001},
	}
	mw := NewMiddleware(config)

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, "/roles/bulk/delete"))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/roles/bulk/delete"))

	// Other routes keep flowing.
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/roles"))
}

func TestMiddlewareForwardedForHeader(t *testing.T) {
	config := DefaultConfig()
	config.GlobalEnabled = false
	config.PerIPCapacity = 1
	config.PerIPRefillRate = 0.001
	mw := NewMiddleware(config)

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/roles", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("203.0.113.8"))
}
