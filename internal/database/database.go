package database

import (
	"fmt"
	"time"

	"seating-planner-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// constraintStatements create the name-uniqueness rules that must hold no
// matter how many sessions write concurrently. Names compare trimmed and
// case-insensitively within one organizer.
var constraintStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_guests_owner_name
		ON guests (owner_id, lower(btrim(first_name)), lower(btrim(last_name)))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tables_owner_name
		ON tables (owner_id, lower(btrim(name)))`,
}

// Initialize opens a Postgres connection, creates the schema from GORM models
// and installs the store-enforced constraints.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB; TranslateError maps unique violations to gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates tables, foreign keys and unique indexes. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// Tables before guests: guests.table_id references tables.id
	all := []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Table{},
		&models.Guest{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}
	return nil
}
