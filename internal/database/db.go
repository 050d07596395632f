// Package database opens the bookings database and applies its schema.
// SQLite is the out-of-the-box default so the server runs with zero
// external services; MySQL is the deployment target.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/amberpalace/hotel-booking/internal/config"
	"github.com/amberpalace/hotel-booking/migrations"
)

// Open connects to the configured database and verifies the connection.
func Open(cfg config.Config) (*sql.DB, error) {
	var driver, dsn string
	switch cfg.DBDriver {
	case "", "sqlite3":
		driver = "sqlite3"
		dsn = cfg.DBPath
	case "mysql":
		driver = "mysql"
		auth := cfg.DBUser
		if cfg.DBPass != "" {
			auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
		}
		// parseTime is harmless with our TEXT timestamps | loc=UTC keeps the session consistent
		dsn = fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, cfg.DBHost, cfg.DBPort, cfg.DBName)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	if driver == "sqlite3" {
		// one writer connection keeps SQLite from returning SQLITE_BUSY
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies the embedded goose migrations for the given driver
// ("sqlite3" or "mysql"). Safe to run on every boot: goose tracks the
// applied version in the database itself.
func Migrate(db *sql.DB, driver string) error {
	if driver == "" {
		driver = "sqlite3"
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, driver); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
