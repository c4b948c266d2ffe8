package videos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vidigest/digest-api/internal/models"
)

// ErrVideoNotFound is returned when no matching video row exists
var ErrVideoNotFound = errors.New("video not found")

type Repository struct {
	db *gorm.DB
}

var _ VideoRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, video *models.Video) error {
	result := r.db.WithContext(ctx).Save(video)
	if result.Error != nil {
		return fmt.Errorf("updating video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

func (r *Repository) GetBySourceID(ctx context.Context, sourceID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("source_id = ?", sourceID).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("getting video by source id: %w", err)
	}
	return &video, nil
}

func (r *Repository) List(ctx context.Context, page, limit int, status models.ProcessingStatus) ([]models.Video, int64, error) {
	var videos []models.Video
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&models.Video{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting videos: %w", err)
	}

	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&videos).Error; err != nil {
		return nil, 0, fmt.Errorf("listing videos: %w", err)
	}

	return videos, total, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uint, status models.ProcessingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating video status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// Delete removes the video along with its transcripts and digests
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&models.Transcript{}).Error; err != nil {
			return fmt.Errorf("deleting transcripts: %w", err)
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.Digest{}).Error; err != nil {
			return fmt.Errorf("deleting digests: %w", err)
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.ProcessingLog{}).Error; err != nil {
			return fmt.Errorf("deleting processing logs: %w", err)
		}

		result := tx.Delete(&models.Video{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting video: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrVideoNotFound
		}
		return nil
	})
	return err
}
