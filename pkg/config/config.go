package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("VIDIGEST")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	if viper.GetString("scraper.base_url") == "" {
		return fmt.Errorf("scraper.base_url must be configured")
	}

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct invalid pipeline concurrency
	if viper.GetInt("pipeline.max_concurrent") <= 0 {
		viper.Set("pipeline.max_concurrent", 4)
	}

	// Auto-correct invalid summarizer rate limit
	if viper.GetInt("summarizer.calls_per_minute") <= 0 {
		viper.Set("summarizer.calls_per_minute", 20)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
	}

	openaiKey := viper.GetString("summarizer.openai_api_key")
	for _, placeholder := range placeholders {
		if openaiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid OpenAI API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: OpenAI API key is using a placeholder value")
			break
		}
	}

	// An absent key is allowed: the summarizer falls back to dry-run mode,
	// but it must never happen silently in production.
	if openaiKey == "" && !viper.GetBool("summarizer.dry_run") {
		if isProduction {
			return fmt.Errorf("summarizer.openai_api_key is empty; set it or enable summarizer.dry_run explicitly")
		}
		fmt.Println("Warning: No OpenAI API key configured, summarizer will run in dry-run mode")
		viper.Set("summarizer.dry_run", true)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper.base_url must be configured")
	}

	if c.Pipeline.MaxConcurrent <= 0 {
		c.Pipeline.MaxConcurrent = 4
	}

	if c.Summarizer.CallsPerMinute <= 0 {
		c.Summarizer.CallsPerMinute = 20
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/digest.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)

	// Scraper backend defaults
	viper.SetDefault("scraper.base_url", "http://localhost:9090")
	viper.SetDefault("scraper.timeout", 30*time.Second)
	viper.SetDefault("scraper.user_agent", "DigestAPI/1.0")
	viper.SetDefault("scraper.cache_ttl", time.Hour)

	// Transcript acquisition defaults
	viper.SetDefault("transcripts.fetch_timeout", 30*time.Second)
	viper.SetDefault("transcripts.max_size", int64(10*1024*1024))
	viper.SetDefault("transcripts.languages", []string{"en"})

	// Summarizer defaults
	viper.SetDefault("summarizer.openai_api_key", "")
	viper.SetDefault("summarizer.model", "gpt-4-turbo")
	viper.SetDefault("summarizer.max_tokens", 500)
	viper.SetDefault("summarizer.temperature", 0.2)
	viper.SetDefault("summarizer.max_transcript_chars", 15000)
	viper.SetDefault("summarizer.calls_per_minute", 20)
	viper.SetDefault("summarizer.max_retries", 3)
	viper.SetDefault("summarizer.retry_delay", 4*time.Second)
	viper.SetDefault("summarizer.dry_run", false)
	viper.SetDefault("summarizer.default_digest_type", "summary")

	// Pipeline defaults
	viper.SetDefault("pipeline.max_concurrent", 4)
	viper.SetDefault("pipeline.run_timeout", 10*time.Minute)
}
