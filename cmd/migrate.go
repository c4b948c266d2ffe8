package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/vidigest/digest-api/internal/database"
)

// migrateCmd applies the GORM auto-migrations without starting the server
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Video Digest API.

This runs GORM auto-migration for every pipeline model (videos,
transcripts, digests, processing logs) against the configured SQLite
database and exits. The serve command runs the same migration on
startup; this command exists for provisioning and CI.`,
	RunE: runMigrate,
}

var migrateReset bool

func init() {
	migrateCmd.Flags().BoolVar(&migrateReset, "reset", false, "Drop all pipeline tables before migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(database.Options{
		Path:                  cfg.Database.Path,
		MaxConnections:        cfg.Database.MaxConnections,
		MaxIdleConnections:    cfg.Database.MaxIdleConnections,
		ConnectionMaxLifetime: cfg.Database.ConnectionMaxLifetime,
		LogQueries:            cfg.Database.LogQueries,
	})
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if migrateReset {
		log.Printf("[WARN] Dropping all pipeline tables in %s", cfg.Database.Path)
		if err := db.DropAll(); err != nil {
			return fmt.Errorf("resetting schema: %w", err)
		}
	}

	if err := db.MigrateAll(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", cfg.Database.Path)
	return nil
}
