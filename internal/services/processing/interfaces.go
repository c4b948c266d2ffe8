package processing

import (
	"context"

	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
	"github.com/vidigest/digest-api/internal/services/summarizer"
)

// MetadataExtractor resolves a video URL to normalized metadata
type MetadataExtractor interface {
	Extract(ctx context.Context, url string) (*extractor.Metadata, error)
}

// TranscriptAcquirer fetches and stores transcripts
type TranscriptAcquirer interface {
	Acquire(ctx context.Context, videoID uint, meta *extractor.Metadata) (*models.Transcript, error)
	LatestProcessed(ctx context.Context, videoID uint) (*models.Transcript, error)
}

// VideoStore is the slice of the video service the pipeline drives
type VideoStore interface {
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	SetStatus(ctx context.Context, id uint, status models.ProcessingStatus) error
	MarkCompleted(ctx context.Context, id uint) error
	MarkFailed(ctx context.Context, id uint, message string) error
}

// DigestStore is the slice of the digest service the pipeline drives
type DigestStore interface {
	Reusable(ctx context.Context, videoID uint, digestType models.DigestType) (*models.Digest, error)
	Store(ctx context.Context, digest *models.Digest) error
	LogUsage(ctx context.Context, entry *models.ProcessingLog) error
}

// Summarizer generates digest content
type Summarizer = summarizer.Summarizer
