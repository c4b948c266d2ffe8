package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vidigest/digest-api/api"
	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/database"
	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/digests"
	"github.com/vidigest/digest-api/internal/services/extractor"
	"github.com/vidigest/digest-api/internal/services/processing"
	"github.com/vidigest/digest-api/internal/services/summarizer"
	"github.com/vidigest/digest-api/internal/services/transcripts"
	"github.com/vidigest/digest-api/internal/services/videos"
	"github.com/vidigest/digest-api/pkg/config"
	"github.com/vidigest/digest-api/pkg/ratelimit"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Video Digest API server with the configured settings.

The server accepts video submissions, runs the digest pipeline in the
background, and serves stored videos, transcripts, and digests.

Example:
  digest-api serve
  digest-api serve --port 9191
  digest-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
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

	if err := db.MigrateAll(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	deps, dispatcher := buildDependencies(cfg, db)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("Video Digest API listening on %s:%d", serverHost, serverPort)

	select {
	case <-stop:
		log.Printf("Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	// Drain in-flight pipeline runs before closing the listener so no
	// video is stranded mid-run
	dispatcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Printf("Server gracefully stopped")
	return nil
}

// buildDependencies wires every service the handlers and pipeline need
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, *processing.Dispatcher) {
	metadataExtractor := extractor.NewClient(extractor.Config{
		BaseURL:   cfg.Scraper.BaseURL,
		Timeout:   cfg.Scraper.Timeout,
		UserAgent: cfg.Scraper.UserAgent,
		CacheTTL:  cfg.Scraper.CacheTTL,
	})

	videoService := videos.NewService(videos.NewRepository(db.DB))

	transcriptService := transcripts.NewService(
		transcripts.NewRepository(db.DB),
		transcripts.NewHTTPFetcher(cfg.Transcripts.FetchTimeout, cfg.Transcripts.MaxSize),
		cfg.Transcripts.Languages,
	)

	digestService := digests.NewService(
		digests.NewRepository(db.DB),
		digests.NewLogRepository(db.DB),
	)

	summarizerConfig := summarizer.Config{
		Model:              cfg.Summarizer.Model,
		MaxTokens:          cfg.Summarizer.MaxTokens,
		Temperature:        float32(cfg.Summarizer.Temperature),
		MaxTranscriptChars: cfg.Summarizer.MaxTranscriptChars,
		MaxRetries:         cfg.Summarizer.MaxRetries,
		RetryDelay:         cfg.Summarizer.RetryDelay,
		DryRun:             cfg.Summarizer.DryRun,
	}
	limiter := ratelimit.NewLimiter(cfg.Summarizer.CallsPerMinute)
	summarizerService := summarizer.NewOpenAIService(summarizerConfig, cfg.Summarizer.OpenAIAPIKey, limiter)

	orchestrator := processing.NewOrchestrator(
		videoService,
		transcriptService,
		digestService,
		metadataExtractor,
		summarizerService,
	)
	dispatcher := processing.NewDispatcher(orchestrator, cfg.Pipeline.MaxConcurrent, cfg.Pipeline.RunTimeout)

	return &types.Dependencies{
		DB:                db,
		VideoService:      videoService,
		TranscriptService: transcriptService,
		DigestService:     digestService,
		Extractor:         metadataExtractor,
		Dispatcher:        dispatcher,
		DefaultDigestType: models.DigestType(cfg.Summarizer.DefaultDigestType),
	}, dispatcher
}
