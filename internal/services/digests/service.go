package digests

import (
	"context"
	"errors"
	"log"

	"github.com/vidigest/digest-api/internal/models"
)

// Service implements digest reuse and storage
type Service struct {
	repo    DigestRepository
	logRepo ProcessingLogRepository
}

var _ DigestService = (*Service)(nil)

func NewService(repo DigestRepository, logRepo ProcessingLogRepository) *Service {
	return &Service{repo: repo, logRepo: logRepo}
}

// Reusable returns an existing non-empty digest of the given type. Empty
// rows do not satisfy reuse; the caller regenerates in that case.
func (s *Service) Reusable(ctx context.Context, videoID uint, digestType models.DigestType) (*models.Digest, error) {
	digest, err := s.repo.GetByVideoAndType(ctx, videoID, digestType)
	if err != nil {
		if errors.Is(err, ErrDigestNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !digest.HasContent() {
		return nil, nil
	}

	log.Printf("[DEBUG] Reusing existing %s digest %d for video %d", digestType, digest.ID, videoID)
	return digest, nil
}

func (s *Service) Store(ctx context.Context, digest *models.Digest) error {
	return s.repo.Create(ctx, digest)
}

func (s *Service) ListByVideo(ctx context.Context, videoID uint) ([]models.Digest, error) {
	return s.repo.ListByVideo(ctx, videoID)
}

// LogUsage records token usage for one real provider call. Dry-run digests
// are not logged.
func (s *Service) LogUsage(ctx context.Context, entry *models.ProcessingLog) error {
	return s.logRepo.Create(ctx, entry)
}
