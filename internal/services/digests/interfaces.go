package digests

import (
	"context"

	"github.com/vidigest/digest-api/internal/models"
)

// DigestRepository defines the interface for digest persistence
type DigestRepository interface {
	Create(ctx context.Context, digest *models.Digest) error
	GetByVideoAndType(ctx context.Context, videoID uint, digestType models.DigestType) (*models.Digest, error)
	ListByVideo(ctx context.Context, videoID uint) ([]models.Digest, error)
	DeleteByVideo(ctx context.Context, videoID uint) error
}

// ProcessingLogRepository records token usage for real provider calls
type ProcessingLogRepository interface {
	Create(ctx context.Context, entry *models.ProcessingLog) error
	ListByVideo(ctx context.Context, videoID uint) ([]models.ProcessingLog, error)
}

// DigestService defines digest lookup and reuse logic
type DigestService interface {
	// Reusable returns an existing non-empty digest of the given type, or
	// nil when one has to be generated.
	Reusable(ctx context.Context, videoID uint, digestType models.DigestType) (*models.Digest, error)

	Store(ctx context.Context, digest *models.Digest) error
	ListByVideo(ctx context.Context, videoID uint) ([]models.Digest, error)
	LogUsage(ctx context.Context, entry *models.ProcessingLog) error
}
