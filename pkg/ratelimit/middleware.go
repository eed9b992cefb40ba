package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	// Global limit across all clients.
	GlobalEnabled    bool
	GlobalCapacity   int
	GlobalRefillRate float64 // requests per second

	// Per-client-IP limit.
	PerIPEnabled    bool
	PerIPCapacity   int
	PerIPRefillRate float64

	// Tighter limits for specific routes, keyed by "METHOD /path".
	EndpointLimits map[string]EndpointLimit

	// How long idle buckets stay in memory.
	BucketTTL time.Duration

	// Whether to expose X-RateLimit-* headers.
	IncludeHeaders bool
}

// EndpointLimit overrides the per-IP limit for one route.
type EndpointLimit struct {
	Capacity   int
	RefillRate float64
}

// DefaultConfig returns limits suitable for a small API service.
// Endpoint overrides are left to the caller since they depend on the
// mounted route prefix.
func DefaultConfig() *Config {
	return &Config{
		GlobalEnabled:    true,
		GlobalCapacity:   1000,
		GlobalRefillRate: 1000.0 / 60.0,

		PerIPEnabled:    true,
		PerIPCapacity:   100,
		PerIPRefillRate: 100.0 / 60.0,

		BucketTTL:      1 * time.Hour,
		IncludeHeaders: true,

		EndpointLimits: make(map[string]EndpointLimit),
	}
}

// Middleware applies token bucket rate limits to incoming requests.
type Middleware struct {
	config           *Config
	globalLimiter    *Limiter
	ipLimiter        *Limiter
	endpointLimiters map[string]*Limiter
}

// NewMiddleware creates rate limiting middleware from config.
// A nil config uses DefaultConfig.
func NewMiddleware(config *Config) *Middleware {
	if config == nil {
		config = DefaultConfig()
	}

	m := &Middleware{
		config:           config,
		endpointLimiters: make(map[string]*Limiter),
	}

	if config.GlobalEnabled {
		m.globalLimiter = NewLimiter(config.GlobalCapacity, config.GlobalRefillRate, config.BucketTTL)
	}
	if config.PerIPEnabled {
		m.ipLimiter = NewLimiter(config.PerIPCapacity, config.PerIPRefillRate, config.BucketTTL)
	}
	for endpoint, limit := range config.EndpointLimits {
		m.endpointLimiters[endpoint] = NewLimiter(limit.Capacity, limit.RefillRate, config.BucketTTL)
	}

	return m
}

// Handler is the chi-compatible middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.config.GlobalEnabled && !m.globalLimiter.Allow("global") {
			m.rejected(w, r, "global")
			return
		}

		ip := clientIP(r)
		if m.config.PerIPEnabled && ip != "" && !m.ipLimiter.Allow(ip) {
			m.rejected(w, r, "ip")
			return
		}

		endpointKey := r.Method + " " + r.URL.Path
		if limiter, ok := m.endpointLimiters[endpointKey]; ok {
			if !limiter.Allow(ip + ":" + endpointKey) {
				m.rejected(w, r, "endpoint")
				return
			}
		}

		if m.config.IncludeHeaders && m.config.PerIPEnabled && ip != "" {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", m.config.PerIPCapacity))
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) rejected(w http.ResponseWriter, r *http.Request, limitType string) {
	slog.Warn("Rate limit exceeded",
		"type", limitType,
		"ip", clientIP(r),
		"path", r.URL.Path,
		"method", r.Method,
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "60")
	w.WriteHeader(http.StatusTooManyRequests)
	fmt.Fprintf(w, `{"code":"RATE_LIMITED","message":"Too many requests. Please try again later.","type":%q}`, limitType)
}

// clientIP extracts the caller's IP, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
