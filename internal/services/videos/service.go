package videos

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
)

// Service implements video lifecycle management
type Service struct {
	repo VideoRepository
}

var _ VideoService = (*Service)(nil)

func NewService(repo VideoRepository) *Service {
	return &Service{repo: repo}
}

// CreateOrReset registers a video from extracted metadata. Resubmitting a
// known source ID refreshes the metadata and resets the pipeline state to
// PENDING so the video can be processed again.
func (s *Service) CreateOrReset(ctx context.Context, meta *extractor.Metadata) (*models.Video, error) {
	existing, err := s.repo.GetBySourceID(ctx, meta.SourceID)
	if err != nil && !errors.Is(err, ErrVideoNotFound) {
		return nil, err
	}

	if existing != nil {
		applyMetadata(existing, meta)
		resetPipelineState(existing)
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		log.Printf("[DEBUG] Reset existing video %d (source %s) to PENDING", existing.ID, existing.SourceID)
		return existing, nil
	}

	video := &models.Video{}
	applyMetadata(video, meta)
	video.Status = models.StatusPending
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Created video %d for source %s", video.ID, video.SourceID)
	return video, nil
}

func applyMetadata(video *models.Video, meta *extractor.Metadata) {
	video.SourceID = meta.SourceID
	video.URL = meta.URL
	video.Title = meta.Title
	video.Description = meta.Description
	video.Duration = meta.Duration
	video.ThumbnailURL = meta.ThumbnailURL
	video.ChannelID = meta.ChannelID
	video.ChannelTitle = meta.ChannelTitle
	video.UploadDate = meta.UploadDate
	video.ViewCount = meta.ViewCount
	video.LikeCount = meta.LikeCount
	video.Tags = models.StringList(meta.Tags)
	video.Categories = models.StringList(meta.Categories)

	video.Chapters = nil
	for _, chapter := range meta.Chapters {
		video.Chapters = append(video.Chapters, models.Chapter{
			Start:     chapter.Start,
			End:       chapter.End,
			Timestamp: chapter.Timestamp,
			Title:     chapter.Title,
		})
	}
}

func resetPipelineState(video *models.Video) {
	video.Status = models.StatusPending
	video.Processed = false
	video.ErrorMessage = ""
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySourceID(ctx context.Context, sourceID string) (*models.Video, error) {
	return s.repo.GetBySourceID(ctx, sourceID)
}

func (s *Service) List(ctx context.Context, page, limit int, status models.ProcessingStatus) ([]models.Video, int64, error) {
	return s.repo.List(ctx, page, limit, status)
}

func (s *Service) SetStatus(ctx context.Context, id uint, status models.ProcessingStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// MarkCompleted finalizes a successful pipeline run
func (s *Service) MarkCompleted(ctx context.Context, id uint) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	video.Status = models.StatusCompleted
	video.Processed = true
	video.ErrorMessage = ""
	video.LastProcessedAt = &now

	return s.repo.Update(ctx, video)
}

// MarkFailed finalizes a failed pipeline run with a diagnostic message
func (s *Service) MarkFailed(ctx context.Context, id uint, message string) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	video.Status = models.StatusFailed
	video.Processed = false
	video.ErrorMessage = message
	video.LastProcessedAt = &now

	return s.repo.Update(ctx, video)
}

// ResetForReprocess moves a terminal video back to PENDING. Videos still
// owned by a pipeline run cannot be reset.
func (s *Service) ResetForReprocess(ctx context.Context, id uint) (*models.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if video.IsProcessing() {
		return nil, fmt.Errorf("video %d is currently %s and cannot be reprocessed", id, video.Status)
	}

	resetPipelineState(video)
	if err := s.repo.Update(ctx, video); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Video %d reset for reprocessing", id)
	return video, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
