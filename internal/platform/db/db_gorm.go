// Package db opens the GORM database connection used by the repositories.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "stockradar/internal/feature/auth/domain/entity"
	snapshotadapters "stockradar/internal/feature/snapshot/adapters"
	universeentity "stockradar/internal/feature/universe/domain/entity"
)

// DriverSQLite and DriverPostgres are the supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultSQLiteDSN is used when no DSN is configured. The dashboard is a
// single-node service, a local file is enough for the snapshot store.
const DefaultSQLiteDSN = "stockradar.db"

// Config holds the database connection settings.
type Config struct {
	Driver        string
	DSN           string
	RunMigrations bool
}

// Dialector returns the GORM dialector for the configured driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	dsn := cfg.DSN
	switch cfg.Driver {
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres driver requires a DSN")
		}
		return gpostgres.Open(dsn), nil
	case DriverSQLite, "":
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		return gsqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects to the database, retrying for up to a minute so the
// service survives a database that comes up after it does.
func Open(cfg Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after 60s: %w", err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&snapshotadapters.StockModel{},
			&universeentity.Symbol{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
