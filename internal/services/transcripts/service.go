package transcripts

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
)

// Service acquires transcripts from caption tracks discovered during
// metadata extraction
type Service struct {
	repo      TranscriptRepository
	fetcher   CaptionFetcher
	languages []string
}

var _ TranscriptService = (*Service)(nil)

// NewService creates a transcript service. languages is the preference
// order for caption languages; nil means English first.
func NewService(repo TranscriptRepository, fetcher CaptionFetcher, languages []string) *Service {
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	return &Service{
		repo:      repo,
		fetcher:   fetcher,
		languages: languages,
	}
}

// Acquire fetches and stores a transcript for the video. Caption problems
// degrade to a stored sentinel transcript instead of an error; only
// persistence failures are returned.
func (s *Service) Acquire(ctx context.Context, videoID uint, meta *extractor.Metadata) (*models.Transcript, error) {
	sel, usable, anyTracks := selectTrack(meta, s.languages)

	if !anyTracks {
		log.Printf("[DEBUG] No caption tracks for video %d, storing placeholder", videoID)
		return s.storeSentinel(ctx, videoID, SentinelNoCaptions, models.TranscriptSourcePlaceholder, nil)
	}

	if !usable {
		log.Printf("[WARN] No parseable caption format for video %d", videoID)
		return s.storeSentinel(ctx, videoID, SentinelUnsupportedFormat, models.TranscriptSourceError, models.ErrorLog{
			"stage": "select",
			"error": "no caption track in a supported format",
		})
	}

	body, err := s.fetcher.Fetch(ctx, sel.track.URL)
	if err != nil {
		log.Printf("[ERROR] Caption download failed for video %d: %v", videoID, err)
		return s.storeSentinel(ctx, videoID, SentinelDownloadFailed, models.TranscriptSourceError, models.ErrorLog{
			"stage":    "download",
			"language": sel.language,
			"error":    err.Error(),
		})
	}

	content, err := ParseJSON3(body)
	if err != nil {
		log.Printf("[ERROR] Caption parse failed for video %d: %v", videoID, err)
		return s.storeSentinel(ctx, videoID, SentinelParseFailed, models.TranscriptSourceError, models.ErrorLog{
			"stage":    "parse",
			"language": sel.language,
			"error":    err.Error(),
		})
	}

	source := models.TranscriptSourceAuto
	if sel.manual {
		source = models.TranscriptSourceManual
	}

	now := time.Now().UTC()
	transcript := &models.Transcript{
		VideoID:     videoID,
		Content:     &content,
		Source:      source,
		Status:      models.TranscriptStatusProcessed,
		FetchedAt:   &now,
		ProcessedAt: &now,
	}
	if err := s.repo.Create(ctx, transcript); err != nil {
		return nil, fmt.Errorf("storing transcript: %w", err)
	}

	log.Printf("[DEBUG] Stored %s transcript for video %d (%d chars, lang=%s)", source, videoID, len(content), sel.language)
	return transcript, nil
}

// storeSentinel persists a degraded placeholder transcript
func (s *Service) storeSentinel(ctx context.Context, videoID uint, content string, source models.TranscriptSource, errorLog models.ErrorLog) (*models.Transcript, error) {
	now := time.Now().UTC()
	transcript := &models.Transcript{
		VideoID:     videoID,
		Content:     &content,
		Source:      source,
		Status:      models.TranscriptStatusProcessed,
		FetchedAt:   &now,
		ProcessedAt: &now,
		ErrorLog:    errorLog,
	}
	if err := s.repo.Create(ctx, transcript); err != nil {
		return nil, fmt.Errorf("storing sentinel transcript: %w", err)
	}
	return transcript, nil
}

func (s *Service) LatestProcessed(ctx context.Context, videoID uint) (*models.Transcript, error) {
	return s.repo.LatestProcessed(ctx, videoID)
}

func (s *Service) ListByVideo(ctx context.Context, videoID uint) ([]models.Transcript, error) {
	return s.repo.ListByVideo(ctx, videoID)
}
