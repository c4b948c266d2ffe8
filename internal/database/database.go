package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vidigest/digest-api/internal/models"
)

type DB struct {
	*gorm.DB
}

// Options configures the database connection
type Options struct {
	Path                  string
	MaxConnections        int
	MaxIdleConnections    int
	ConnectionMaxLifetime time.Duration
	LogQueries            bool
}

// DefaultOptions returns sensible connection defaults
func DefaultOptions(path string) Options {
	return Options{
		Path:                  path,
		MaxConnections:        10,
		MaxIdleConnections:    5,
		ConnectionMaxLifetime: 30 * time.Minute,
	}
}

// Initialize creates a new database connection with the provided options
func Initialize(opts Options) (*DB, error) {
	// Ensure the database directory exists
	dir := filepath.Dir(opts.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := logger.Error
	if opts.LogQueries {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(opts.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if opts.MaxIdleConnections > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConnections)
	}
	if opts.MaxConnections > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxConnections)
	}
	if opts.ConnectionMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnectionMaxLifetime)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Printf("Successfully migrated %d model(s)", len(models))
	return nil
}

// MigrateAll migrates every pipeline model
func (db *DB) MigrateAll() error {
	return db.AutoMigrate(
		&models.Video{},
		&models.Transcript{},
		&models.Digest{},
		&models.ProcessingLog{},
	)
}

// DropAll drops every pipeline table. Dependents first so foreign keys
// never dangle mid-drop.
func (db *DB) DropAll() error {
	tables := []any{
		&models.ProcessingLog{},
		&models.Digest{},
		&models.Transcript{},
		&models.Video{},
	}
	for _, table := range tables {
		if err := db.DB.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("dropping table: %w", err)
		}
	}
	return nil
}
