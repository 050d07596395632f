// Package config loads runtime settings from environment variables.
// Values without a safe default (the JWT signing secret, MySQL
// connection details when that driver is selected) halt startup when
// missing; everything else falls back to defaults that let the server
// run out of the box on a local SQLite file. Redis and RabbitMQ are
// optional concerns: leaving their variables unset disables the feature
// instead of failing.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the server reads at boot.
type Config struct {
	Env  string // application environment (dev/test/prod)
	Port string // HTTP port to listen on

	DBDriver string // "sqlite3" (default) or "mysql"
	DBPath   string // sqlite3 database file
	DBUser   string // mysql credentials and address, required when DBDriver is mysql
	DBPass   string
	DBHost   string
	DBPort   string
	DBName   string

	JWTSecret     string // secret used to sign admin access tokens
	AccessTTLMin  int    // admin token time-to-live in minutes
	BcryptCost    int    // bcrypt cost used when hashing the admin password
	AdminPassword string // shared admin secret, hashed once at startup

	TaxRate     float64 // tax fraction applied to booking subtotals
	Timezone    string  // IANA zone used for booking creation timestamps
	CatalogPath string  // optional JSON catalog file; empty selects the built-in catalog

	RabbitURL string // optional AMQP URL; empty disables booking events
}

// Load reads the configuration from the environment. Missing required
// variables are fatal: a server with no signing secret or an
// unreachable database description cannot do useful work.
func Load() Config {
	cfg := Config{
		Env:           envStr("APP_ENV", "dev"),
		Port:          envStr("APP_PORT", "8080"),
		DBDriver:      envStr("DB_DRIVER", "sqlite3"),
		DBPath:        envStr("DB_PATH", "amber_palace.db"),
		DBPass:        os.Getenv("DB_PASS"), // empty password is allowed
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 24*60),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		AdminPassword: envStr("ADMIN_PASSWORD", "admin123"),
		TaxRate:       envFloat("TAX_RATE", 0.12),
		Timezone:      envStr("TIMEZONE", "Asia/Kolkata"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		RabbitURL:     os.Getenv("RABBITMQ_URL"),
	}
	if cfg.RabbitURL == "" {
		cfg.RabbitURL = os.Getenv("AMQP_URL")
	}
	if cfg.DBDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves a required environment variable and exits when it is
// unset or empty.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
