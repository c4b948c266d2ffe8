package processing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/summarizer"
	"github.com/vidigest/digest-api/internal/services/transcripts"
)

// Pipeline stage labels used in failure messages
const (
	stageExtraction    = "extraction"
	stageTranscript    = "transcript"
	stageSummarization = "summarization"
)

// unavailableDigestContent is stored when the transcript is a placeholder.
// No provider call is worth making for content that cannot be summarized.
const unavailableDigestContent = "Summary unavailable: no usable transcript could be obtained for this video."

// Orchestrator runs the digest pipeline for one video at a time. Stage
// failures are translated into a FAILED video with a "stage: message"
// diagnostic; the orchestrator itself never leaves a video in a
// non-terminal state.
type Orchestrator struct {
	videos      VideoStore
	transcripts TranscriptAcquirer
	digests     DigestStore
	extractor   MetadataExtractor
	summarizer  Summarizer
}

func NewOrchestrator(
	videos VideoStore,
	transcriptSvc TranscriptAcquirer,
	digestSvc DigestStore,
	metadataExtractor MetadataExtractor,
	summarizerSvc Summarizer,
) *Orchestrator {
	return &Orchestrator{
		videos:      videos,
		transcripts: transcriptSvc,
		digests:     digestSvc,
		extractor:   metadataExtractor,
		summarizer:  summarizerSvc,
	}
}

// Process runs the full pipeline for a video. The returned error mirrors
// what was already recorded on the video row; callers only log it.
func (o *Orchestrator) Process(ctx context.Context, videoID uint, digestType models.DigestType) error {
	if digestType == "" {
		digestType = models.DigestTypeSummary
	}

	video, err := o.videos.GetByID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("loading video %d: %w", videoID, err)
	}

	if err := o.videos.SetStatus(ctx, videoID, models.StatusProcessing); err != nil {
		return fmt.Errorf("marking video %d processing: %w", videoID, err)
	}
	log.Printf("[DEBUG] Pipeline started for video %d (%s digest)", videoID, digestType)

	// Reuse before any network work. An existing digest of the requested
	// type together with a processed transcript completes the run without
	// touching the scraper or the provider.
	existingDigest, err := o.digests.Reusable(ctx, videoID, digestType)
	if err != nil {
		return o.fail(ctx, videoID, stageSummarization, err)
	}

	transcript, err := o.transcripts.LatestProcessed(ctx, videoID)
	if err != nil && !errors.Is(err, transcripts.ErrTranscriptNotFound) {
		return o.fail(ctx, videoID, stageTranscript, err)
	}

	if existingDigest != nil && transcript != nil {
		if err := o.videos.SetStatus(ctx, videoID, models.StatusSummarizing); err != nil {
			return fmt.Errorf("marking video %d summarizing: %w", videoID, err)
		}
		if err := o.videos.MarkCompleted(ctx, videoID); err != nil {
			return fmt.Errorf("completing video %d: %w", videoID, err)
		}
		log.Printf("[DEBUG] Video %d completed from existing digest %d", videoID, existingDigest.ID)
		return nil
	}

	if transcript == nil {
		meta, err := o.extractor.Extract(ctx, video.URL)
		if err != nil {
			return o.fail(ctx, videoID, stageExtraction, err)
		}

		transcript, err = o.transcripts.Acquire(ctx, videoID, meta)
		if err != nil {
			return o.fail(ctx, videoID, stageTranscript, err)
		}
	}

	if err := o.videos.SetStatus(ctx, videoID, models.StatusSummarizing); err != nil {
		return fmt.Errorf("marking video %d summarizing: %w", videoID, err)
	}

	if existingDigest == nil {
		if err := o.generateDigest(ctx, video, transcript, digestType); err != nil {
			return o.fail(ctx, videoID, stageSummarization, err)
		}
	}

	if err := o.videos.MarkCompleted(ctx, videoID); err != nil {
		return fmt.Errorf("completing video %d: %w", videoID, err)
	}

	log.Printf("[DEBUG] Pipeline completed for video %d", videoID)
	return nil
}

// summarizerRequest builds the prompt inputs from stored state
func summarizerRequest(video *models.Video, transcript *models.Transcript, digestType models.DigestType) summarizer.Request {
	return summarizer.Request{
		VideoTitle:   video.Title,
		ChannelTitle: video.ChannelTitle,
		Duration:     video.Duration,
		Chapters:     video.Chapters,
		Transcript:   transcript.Text(),
		DigestType:   digestType,
	}
}

// generateDigest calls the summarizer and persists the result. A sentinel
// transcript skips the provider entirely and records a fixed unavailable
// digest with zero usage.
func (o *Orchestrator) generateDigest(ctx context.Context, video *models.Video, transcript *models.Transcript, digestType models.DigestType) error {
	if transcripts.IsSentinel(transcript.Text()) {
		log.Printf("[DEBUG] Transcript for video %d is a placeholder, recording unavailable digest", video.ID)
		return o.digests.Store(ctx, &models.Digest{
			VideoID:     video.ID,
			DigestType:  digestType,
			Content:     unavailableDigestContent,
			GeneratedAt: time.Now().UTC(),
		})
	}

	result, err := o.summarizer.Summarize(ctx, summarizerRequest(video, transcript, digestType))
	if err != nil {
		return err
	}

	digest := &models.Digest{
		VideoID:          video.ID,
		DigestType:       digestType,
		Content:          result.Content,
		Model:            result.Model,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
		EstimatedCost:    result.EstimatedCost,
		GeneratedAt:      result.GeneratedAt,
	}
	if err := o.digests.Store(ctx, digest); err != nil {
		return err
	}

	if !result.DryRun {
		if err := o.digests.LogUsage(ctx, &models.ProcessingLog{
			VideoID:      video.ID,
			RequestType:  string(digestType),
			Model:        result.Model,
			TokensUsed:   result.TotalTokens,
			CostEstimate: result.EstimatedCost,
		}); err != nil {
			// Accounting must not fail the video
			log.Printf("[WARN] Failed to record usage for video %d: %v", video.ID, err)
		}
	}

	return nil
}

// fail records the stage failure on the video and returns the wrapped error
func (o *Orchestrator) fail(ctx context.Context, videoID uint, stage string, cause error) error {
	message := fmt.Sprintf("%s: %v", stage, cause)
	log.Printf("[ERROR] Pipeline failed for video %d at %s: %v", videoID, stage, cause)

	if err := o.videos.MarkFailed(ctx, videoID, message); err != nil {
		log.Printf("[ERROR] Could not mark video %d failed: %v", videoID, err)
	}

	return fmt.Errorf("%s stage failed for video %d: %w", stage, videoID, cause)
}
