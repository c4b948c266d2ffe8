package transcripts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vidigest/digest-api/internal/models"
)

// ErrTranscriptNotFound is returned when no matching transcript exists
var ErrTranscriptNotFound = errors.New("transcript not found")

type Repository struct {
	db *gorm.DB
}

var _ TranscriptRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, transcript *models.Transcript) error {
	if err := r.db.WithContext(ctx).Create(transcript).Error; err != nil {
		return fmt.Errorf("creating transcript: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, transcript *models.Transcript) error {
	result := r.db.WithContext(ctx).Save(transcript)
	if result.Error != nil {
		return fmt.Errorf("updating transcript: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTranscriptNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Transcript, error) {
	var transcript models.Transcript
	if err := r.db.WithContext(ctx).First(&transcript, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("getting transcript: %w", err)
	}
	return &transcript, nil
}

// LatestProcessed returns the most recent usable transcript for the video
func (r *Repository) LatestProcessed(ctx context.Context, videoID uint) (*models.Transcript, error) {
	var transcript models.Transcript
	if err := r.db.WithContext(ctx).
		Where("video_id = ? AND status = ?", videoID, models.TranscriptStatusProcessed).
		Order("created_at DESC, id DESC").
		First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("getting latest processed transcript: %w", err)
	}
	return &transcript, nil
}

func (r *Repository) ListByVideo(ctx context.Context, videoID uint) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Find(&transcripts).Error; err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	return transcripts, nil
}

func (r *Repository) DeleteByVideo(ctx context.Context, videoID uint) error {
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.Transcript{}).Error; err != nil {
		return fmt.Errorf("deleting transcripts: %w", err)
	}
	return nil
}
