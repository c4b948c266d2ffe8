package types

import (
	"fmt"

	"github.com/vidigest/digest-api/internal/models"
)

// SubmitVideoRequest is the body for POST /api/v1/videos
type SubmitVideoRequest struct {
	URL        string `json:"url" binding:"required"`
	DigestType string `json:"digest_type"`
}

// ReprocessRequest is the optional body for POST /api/v1/videos/:id/reprocess
type ReprocessRequest struct {
	DigestType string `json:"digest_type"`
}

// ParseDigestType validates a digest type string, applying the fallback
// when it is empty
func ParseDigestType(raw string, fallback models.DigestType) (models.DigestType, error) {
	if raw == "" {
		if fallback != "" {
			return fallback, nil
		}
		return models.DigestTypeSummary, nil
	}

	digestType := models.DigestType(raw)
	switch digestType {
	case models.DigestTypeSummary, models.DigestTypeDetailed, models.DigestTypeHighlights, models.DigestTypeConcise:
		return digestType, nil
	}

	return "", fmt.Errorf("unknown digest type %q", raw)
}
