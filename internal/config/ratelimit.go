package config

import "time"

// RateLimitConfig tunes the Redis token bucket that guards booking
// submissions and admin logins. KeyStrategy picks the bucket key;
// guests book anonymously, so the default buckets per client IP.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int           // bucket size (burst allowance)
	RefillTokens   int           // tokens returned per interval
	RefillInterval time.Duration // how often the bucket refills
	TTL            time.Duration // idle bucket expiry in Redis
	KeyStrategy    string        // ip, user, route, or combinations
	Prefix         string        // Redis key namespace
	Debug          bool          // expose bucket keys and log decisions
}

// LoadRateLimitConfig reads RATE_LIMIT_* variables, applying defaults
// and clamping nonsense values to the nearest sane ones.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 20),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", 3*time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip"),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
		Debug:          envBool("RATE_LIMIT_DEBUG", false),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	// A bucket must outlive several refill cycles or it resets to full
	// every time it expires.
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
