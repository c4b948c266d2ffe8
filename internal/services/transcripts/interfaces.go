package transcripts

import (
	"context"

	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
)

// TranscriptRepository defines the interface for transcript persistence
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *models.Transcript) error
	Update(ctx context.Context, transcript *models.Transcript) error
	GetByID(ctx context.Context, id uint) (*models.Transcript, error)
	LatestProcessed(ctx context.Context, videoID uint) (*models.Transcript, error)
	ListByVideo(ctx context.Context, videoID uint) ([]models.Transcript, error)
	DeleteByVideo(ctx context.Context, videoID uint) error
}

// TranscriptService defines the business logic for transcript acquisition
type TranscriptService interface {
	// Acquire fetches, parses, and stores a transcript for the video. It
	// never fails the pipeline over caption problems: when no usable
	// captions exist it stores a sentinel transcript and returns it.
	Acquire(ctx context.Context, videoID uint, meta *extractor.Metadata) (*models.Transcript, error)

	LatestProcessed(ctx context.Context, videoID uint) (*models.Transcript, error)
	ListByVideo(ctx context.Context, videoID uint) ([]models.Transcript, error)
}

// CaptionFetcher downloads raw caption payloads
type CaptionFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
