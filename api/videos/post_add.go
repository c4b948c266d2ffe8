package videos

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/services/extractor"
)

// PostAdd handles video submission. Metadata extraction runs synchronously
// so the caller gets a definitive answer about the URL; the rest of the
// pipeline runs in the background.
//
// @Summary Submit a video for digestion
// @Accept json
// @Produce json
// @Param request body types.SubmitVideoRequest true "Video submission"
// @Success 202 {object} types.SubmitResponse
// @Router /api/v1/videos [post]
func PostAdd(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SubmitVideoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}

		digestType, err := types.ParseDigestType(req.DigestType, deps.DefaultDigestType)
		if err != nil {
			types.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}

		meta, err := deps.Extractor.Extract(c.Request.Context(), req.URL)
		if err != nil {
			respondExtractionError(c, err)
			return
		}

		video, err := deps.VideoService.CreateOrReset(c.Request.Context(), meta)
		if err != nil {
			log.Printf("[ERROR] Failed to register video %s: %v", meta.SourceID, err)
			types.RespondError(c, http.StatusInternalServerError, "Failed to register video")
			return
		}

		if !deps.Dispatcher.Enqueue(video.ID, digestType) {
			log.Printf("[WARN] Video %d already in flight, submission acknowledged without a new run", video.ID)
		}

		c.JSON(http.StatusAccepted, types.SubmitResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusQueued,
				Message: "Video accepted for processing",
			},
			Video: video,
		})
	}
}

// respondExtractionError maps the extraction taxonomy onto HTTP statuses
func respondExtractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extractor.ErrInvalidURL):
		types.RespondErrorWithCode(c, http.StatusBadRequest, "invalid_url", err.Error())
	case errors.Is(err, extractor.ErrVideoNotFound):
		types.RespondErrorWithCode(c, http.StatusNotFound, "video_not_found", err.Error())
	case errors.Is(err, extractor.ErrVideoForbidden):
		types.RespondErrorWithCode(c, http.StatusForbidden, "video_forbidden", err.Error())
	case errors.Is(err, extractor.ErrRateLimited):
		types.RespondErrorWithCode(c, http.StatusTooManyRequests, "rate_limited", err.Error())
	case errors.Is(err, extractor.ErrUnsupportedContent):
		types.RespondErrorWithCode(c, http.StatusUnprocessableEntity, "unsupported_content", err.Error())
	default:
		log.Printf("[ERROR] Extraction failed: %v", err)
		types.RespondErrorWithCode(c, http.StatusBadGateway, "extraction_failed", "Could not extract video metadata")
	}
}
