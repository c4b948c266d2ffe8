package videos

import (
	"context"

	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
)

// VideoRepository defines the interface for video persistence
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	Update(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	GetBySourceID(ctx context.Context, sourceID string) (*models.Video, error)
	List(ctx context.Context, page, limit int, status models.ProcessingStatus) ([]models.Video, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.ProcessingStatus) error
	Delete(ctx context.Context, id uint) error
}

// VideoService defines the business logic for video lifecycle management
type VideoService interface {
	// CreateOrReset registers a new video from extracted metadata, or
	// resets an existing one with the same source ID back to PENDING.
	CreateOrReset(ctx context.Context, meta *extractor.Metadata) (*models.Video, error)

	GetByID(ctx context.Context, id uint) (*models.Video, error)
	GetBySourceID(ctx context.Context, sourceID string) (*models.Video, error)
	List(ctx context.Context, page, limit int, status models.ProcessingStatus) ([]models.Video, int64, error)

	// Status transitions used by the pipeline
	SetStatus(ctx context.Context, id uint, status models.ProcessingStatus) error
	MarkCompleted(ctx context.Context, id uint) error
	MarkFailed(ctx context.Context, id uint, message string) error
	ResetForReprocess(ctx context.Context, id uint) (*models.Video, error)

	Delete(ctx context.Context, id uint) error
}
