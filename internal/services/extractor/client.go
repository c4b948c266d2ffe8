package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds scraper backend settings
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	CacheTTL  time.Duration
}

// DefaultConfig returns a config pointed at a local resolver
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:9090",
		Timeout:   60 * time.Second,
		UserAgent: "vidigest/1.0",
		CacheTTL:  15 * time.Minute,
	}
}

// Client talks to a yt-dlp compatible resolver over HTTP and normalizes
// its payload into Metadata
type Client struct {
	config     Config
	httpClient *http.Client
	cache      *metadataCache
}

// NewClient creates an extraction client. Zero-value config fields fall
// back to defaults.
func NewClient(config Config) *Client {
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = defaults.CacheTTL
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		cache: newMetadataCache(config.CacheTTL),
	}
}

// Extract resolves a video URL to normalized metadata. Results are cached
// by URL for the configured TTL.
func (c *Client) Extract(ctx context.Context, videoURL string) (*Metadata, error) {
	if err := validateURL(videoURL); err != nil {
		return nil, err
	}

	if cached, ok := c.cache.get(videoURL); ok {
		log.Printf("[DEBUG] Extractor cache hit for %s", videoURL)
		return cached, nil
	}

	info, err := c.resolve(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	if err := validateInfo(videoURL, info); err != nil {
		return nil, err
	}

	meta := Normalize(videoURL, info)
	c.cache.set(videoURL, meta)

	log.Printf("[DEBUG] Extracted metadata for %s: title=%q duration=%ds", meta.SourceID, meta.Title, meta.Duration)
	return meta, nil
}

// resolve performs the HTTP round trip and maps status codes onto the
// extraction error taxonomy
func (c *Client) resolve(ctx context.Context, videoURL string) (*Info, error) {
	endpoint := fmt.Sprintf("%s/api/v1/resolve?url=%s", strings.TrimRight(c.config.BaseURL, "/"), url.QueryEscape(videoURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ExtractionError{URL: videoURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ExtractionError{URL: videoURL, Message: "scraper request failed", Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, ExtractionError{URL: videoURL, Message: "failed to read scraper response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(videoURL, resp.StatusCode, body)
	}

	var info Info
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, ExtractionError{URL: videoURL, Message: "invalid scraper payload", Cause: err}
	}

	return &info, nil
}

// classifyStatus maps a non-200 scraper response onto a typed error
func classifyStatus(videoURL string, status int, body []byte) error {
	message := scraperMessage(body)

	switch status {
	case http.StatusNotFound:
		return NotFoundError{URL: videoURL, Message: message}
	case http.StatusForbidden, http.StatusUnauthorized:
		return ForbiddenError{URL: videoURL, Message: message}
	case http.StatusTooManyRequests:
		return RateLimitedError{URL: videoURL, Message: message}
	}

	// Some backends report removal and privacy through a generic error body
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "video unavailable"), strings.Contains(lower, "not found"):
		return NotFoundError{URL: videoURL, Message: message}
	case strings.Contains(lower, "private video"), strings.Contains(lower, "sign in"):
		return ForbiddenError{URL: videoURL, Message: message}
	case strings.Contains(lower, "rate limit"), strings.Contains(lower, "too many requests"):
		return RateLimitedError{URL: videoURL, Message: message}
	}

	return ExtractionError{URL: videoURL, Message: fmt.Sprintf("scraper returned status %d: %s", status, message)}
}

// scraperMessage pulls a human readable message out of an error body
func scraperMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, s := range []string{payload.Error, payload.Message, payload.Detail} {
			if s != "" {
				return s
			}
		}
	}

	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	if trimmed == "" {
		trimmed = "no response body"
	}
	return trimmed
}

// validateURL rejects malformed or non-HTTP URLs before contacting the backend
func validateURL(videoURL string) error {
	if strings.TrimSpace(videoURL) == "" {
		return fmt.Errorf("%w: empty URL", ErrInvalidURL)
	}

	parsed, err := url.Parse(videoURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}

// validateInfo rejects payloads the pipeline cannot process
func validateInfo(videoURL string, info *Info) error {
	if info.Type == "playlist" || info.Type == "multi_video" {
		return UnsupportedContentError{URL: videoURL, Reason: "URL resolves to a playlist, not a single video"}
	}
	if info.IsLive {
		return UnsupportedContentError{URL: videoURL, Reason: "live streams are not supported"}
	}
	if info.Availability == "private" || info.Availability == "needs_auth" {
		return ForbiddenError{URL: videoURL, Message: "video is " + info.Availability}
	}

	if info.ID == "" {
		return UnsupportedContentError{URL: videoURL, Reason: "metadata is missing the video id"}
	}
	if info.Title == "" {
		return UnsupportedContentError{URL: videoURL, Reason: "metadata is missing the title"}
	}
	if info.Duration <= 0 {
		return UnsupportedContentError{URL: videoURL, Reason: "metadata is missing the duration"}
	}

	return nil
}
