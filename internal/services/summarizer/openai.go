package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"

	"github.com/vidigest/digest-api/internal/models"
)

// ErrEmptyTranscript is returned when there is nothing to summarize
var ErrEmptyTranscript = errors.New("transcript is empty")

// errInvalidAuth marks a rejected API key so the caller can degrade to
// dry-run output instead of failing the pipeline
var errInvalidAuth = errors.New("provider rejected the API key")

// SummaryGenerationError wraps a provider failure that survived retries
type SummaryGenerationError struct {
	Model   string
	Message string
	Cause   error
}

func (e SummaryGenerationError) Error() string {
	return fmt.Sprintf("summary generation failed (model %s): %s", e.Model, e.Message)
}

func (e SummaryGenerationError) Unwrap() error {
	return e.Cause
}

// Config holds summarizer tuning
type Config struct {
	Model              string
	MaxTokens          int
	Temperature        float32
	MaxTranscriptChars int
	MaxRetries         int
	RetryDelay         time.Duration
	DryRun             bool
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		Model:              "gpt-4-turbo",
		MaxTokens:          500,
		Temperature:        0.2,
		MaxTranscriptChars: 15000,
		MaxRetries:         3,
		RetryDelay:         4 * time.Second,
	}
}

// Service generates digests through the OpenAI chat completion API
type Service struct {
	config  Config
	client  chatClient
	limiter RateLimiter
}

var _ Summarizer = (*Service)(nil)

// NewService creates a summarizer. A nil client (no API key configured)
// forces dry-run mode. limiter may be nil when no gating is wanted.
func NewService(config Config, client chatClient, limiter RateLimiter) *Service {
	defaults := DefaultConfig()
	if config.Model == "" {
		config.Model = defaults.Model
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaults.MaxTokens
	}
	if config.MaxTranscriptChars <= 0 {
		config.MaxTranscriptChars = defaults.MaxTranscriptChars
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = defaults.MaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = defaults.RetryDelay
	}
	if client == nil {
		config.DryRun = true
	}

	return &Service{
		config:  config,
		client:  client,
		limiter: limiter,
	}
}

// NewOpenAIService wires a Service to the real OpenAI client. An empty key
// yields a dry-run service.
func NewOpenAIService(config Config, apiKey string, limiter RateLimiter) *Service {
	var client chatClient
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return NewService(config, client, limiter)
}

// Summarize produces one digest. Provider calls are rate limited and
// retried with exponential backoff; an invalid API key degrades to dry-run
// output rather than failing the video.
func (s *Service) Summarize(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, ErrEmptyTranscript
	}
	if req.DigestType == "" {
		req.DigestType = models.DigestTypeSummary
	}

	if s.config.DryRun {
		return s.dryRunResult(req), nil
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(req.DigestType)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req, s.config.MaxTranscriptChars)},
		},
	}

	var resp openai.ChatCompletionResponse
	operation := func() error {
		if s.limiter != nil {
			if err := s.limiter.Acquire(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}

		var err error
		resp, err = s.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return classifyProviderError(err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("provider returned no choices")
		}
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = s.config.RetryDelay
	expo.MaxInterval = 4 * s.config.RetryDelay
	expo.MaxElapsedTime = 0

	policy := backoff.WithContext(
		backoff.WithMaxRetries(expo, uint64(s.config.MaxRetries-1)),
		ctx,
	)

	if err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		log.Printf("[WARN] Summarization attempt failed, retrying in %s: %v", wait, err)
	}); err != nil {
		if errors.Is(err, errInvalidAuth) {
			log.Printf("[WARN] API key rejected, falling back to dry-run digest for %q", req.VideoTitle)
			return s.dryRunResult(req), nil
		}
		return nil, SummaryGenerationError{Model: s.config.Model, Message: "provider call failed after retries", Cause: err}
	}

	usage := resp.Usage
	return &Result{
		Content:          resp.Choices[0].Message.Content,
		Model:            s.config.Model,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		EstimatedCost:    CalculateCost(s.config.Model, usage.PromptTokens, usage.CompletionTokens),
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// classifyProviderError decides whether an error is worth retrying
func classifyProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return backoff.Permanent(fmt.Errorf("%w: %v", errInvalidAuth, err))
		case 400, 404, 422:
			// Malformed request will not get better on retry
			return backoff.Permanent(err)
		}
	}
	return err
}

// dryRunResult builds a deterministic digest without contacting the
// provider. Token counts and cost are zero.
func (s *Service) dryRunResult(req Request) *Result {
	content := fmt.Sprintf(
		"[dry run] %s digest for %q. Generated without contacting the provider; transcript length %d characters.",
		req.DigestType, req.VideoTitle, len(req.Transcript),
	)

	return &Result{
		Content:     content,
		Model:       s.config.Model,
		DryRun:      true,
		GeneratedAt: time.Now().UTC(),
	}
}
