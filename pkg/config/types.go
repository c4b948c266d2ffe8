package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Scraper     ScraperConfig     `mapstructure:"scraper"`
	Transcripts TranscriptsConfig `mapstructure:"transcripts"`
	Summarizer  SummarizerConfig  `mapstructure:"summarizer"`
	Pipeline    PipelineConfig    `mapstructure:"pipeline"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// ScraperConfig contains settings for the video metadata scraping backend
type ScraperConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// TranscriptsConfig contains caption acquisition settings
type TranscriptsConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	MaxSize      int64         `mapstructure:"max_size"`
	Languages    []string      `mapstructure:"languages"`
}

// SummarizerConfig contains LLM provider settings
type SummarizerConfig struct {
	OpenAIAPIKey       string        `mapstructure:"openai_api_key"`
	Model              string        `mapstructure:"model"`
	MaxTokens          int           `mapstructure:"max_tokens"`
	Temperature        float64       `mapstructure:"temperature"`
	MaxTranscriptChars int           `mapstructure:"max_transcript_chars"`
	CallsPerMinute     int           `mapstructure:"calls_per_minute"`
	MaxRetries         int           `mapstructure:"max_retries"`
	RetryDelay         time.Duration `mapstructure:"retry_delay"`
	DryRun             bool          `mapstructure:"dry_run"`
	DefaultDigestType  string        `mapstructure:"default_digest_type"`
}

// PipelineConfig contains background pipeline settings
type PipelineConfig struct {
	MaxConcurrent int           `mapstructure:"max_concurrent"`
	RunTimeout    time.Duration `mapstructure:"run_timeout"`
}
