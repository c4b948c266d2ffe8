package digests

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vidigest/digest-api/internal/models"
)

// ErrDigestNotFound is returned when no matching digest exists
var ErrDigestNotFound = errors.New("digest not found")

type Repository struct {
	db *gorm.DB
}

var _ DigestRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, digest *models.Digest) error {
	if err := r.db.WithContext(ctx).Create(digest).Error; err != nil {
		return fmt.Errorf("creating digest: %w", err)
	}
	return nil
}

func (r *Repository) GetByVideoAndType(ctx context.Context, videoID uint, digestType models.DigestType) (*models.Digest, error) {
	var digest models.Digest
	if err := r.db.WithContext(ctx).
		Where("video_id = ? AND digest_type = ?", videoID, digestType).
		Order("created_at DESC, id DESC").
		First(&digest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDigestNotFound
		}
		return nil, fmt.Errorf("getting digest: %w", err)
	}
	return &digest, nil
}

func (r *Repository) ListByVideo(ctx context.Context, videoID uint) ([]models.Digest, error) {
	var digests []models.Digest
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Find(&digests).Error; err != nil {
		return nil, fmt.Errorf("listing digests: %w", err)
	}
	return digests, nil
}

func (r *Repository) DeleteByVideo(ctx context.Context, videoID uint) error {
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.Digest{}).Error; err != nil {
		return fmt.Errorf("deleting digests: %w", err)
	}
	return nil
}

// LogRepository persists ProcessingLog rows
type LogRepository struct {
	db *gorm.DB
}

var _ ProcessingLogRepository = (*LogRepository)(nil)

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Create(ctx context.Context, entry *models.ProcessingLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating processing log: %w", err)
	}
	return nil
}

func (r *LogRepository) ListByVideo(ctx context.Context, videoID uint) ([]models.ProcessingLog, error) {
	var entries []models.ProcessingLog
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("listing processing logs: %w", err)
	}
	return entries, nil
}
