package summarizer

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vidigest/digest-api/internal/models"
)

// Request carries everything the summarizer needs to build a prompt
type Request struct {
	VideoTitle   string
	ChannelTitle string
	Duration     int
	Chapters     []models.Chapter
	Transcript   string
	DigestType   models.DigestType
}

// Result is one generated digest with its token accounting
type Result struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	EstimatedCost    float64
	DryRun           bool
	GeneratedAt      time.Time
}

// Summarizer generates digest content from a transcript
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (*Result, error)
}

// RateLimiter gates outbound provider calls. The pipeline injects a shared
// limiter so every worker competes for the same budget.
type RateLimiter interface {
	Acquire(ctx context.Context) error
}

// chatClient is the slice of the OpenAI client the service uses, narrowed
// so tests can substitute a fake
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
