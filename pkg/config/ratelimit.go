package config

import (
	"time"

	"github.com/tendant/simple-facts/pkg/ratelimit"
)

// RateLimitConfig controls the HTTP rate limiting middleware.
type RateLimitConfig struct {
	Enabled bool `env:"FACTS_RATE_LIMIT_ENABLED" env-default:"true"`

	GlobalPerMinute int `env:"FACTS_RATE_LIMIT_GLOBAL_PER_MINUTE" env-default:"1000"`
	PerIPPerMinute  int `env:"FACTS_RATE_LIMIT_PER_IP_PER_MINUTE" env-default:"100"`

	BucketTTL time.Duration `env:"FACTS_RATE_LIMIT_BUCKET_TTL" env-default:"1h"`
}

// Validate checks the rate limit configuration values.
func (c RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return Validate(func() ValidationErrors {
		return CollectErrors(
			RequirePositive("FACTS_RATE_LIMIT_GLOBAL_PER_MINUTE", c.GlobalPerMinute),
			RequirePositive("FACTS_RATE_LIMIT_PER_IP_PER_MINUTE", c.PerIPPerMinute),
		)
	})
}

// ToMiddlewareConfig converts the env-backed settings into the
// middleware's config shape.
func (c RateLimitConfig) ToMiddlewareConfig() *ratelimit.Config {
	mc := ratelimit.DefaultConfig()
	mc.GlobalCapacity = c.GlobalPerMinute
	mc.GlobalRefillRate = float64(c.GlobalPerMinute) / 60.0
	mc.PerIPCapacity = c.PerIPPerMinute
	mc.PerIPRefillRate = float64(c.PerIPPerMinute) / 60.0
	mc.BucketTTL = c.BucketTTL
	return mc
}
