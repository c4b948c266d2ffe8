package types

import (
	"github.com/vidigest/digest-api/internal/database"
	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/digests"
	"github.com/vidigest/digest-api/internal/services/processing"
	"github.com/vidigest/digest-api/internal/services/transcripts"
	"github.com/vidigest/digest-api/internal/services/videos"
)

// Dispatcher schedules background pipeline runs
type Dispatcher interface {
	Enqueue(videoID uint, digestType models.DigestType) bool
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	VideoService      videos.VideoService
	TranscriptService transcripts.TranscriptService
	DigestService     digests.DigestService
	Extractor         processing.MetadataExtractor
	Dispatcher        Dispatcher
	DefaultDigestType models.DigestType
}
