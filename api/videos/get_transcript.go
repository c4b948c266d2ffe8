package videos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/services/transcripts"
	videosService "github.com/vidigest/digest-api/internal/services/videos"
)

// GetTranscript returns the most recent processed transcript for a video
//
// @Summary Get a video's transcript
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} types.TranscriptResponse
// @Router /api/v1/videos/{id}/transcript [get]
func GetTranscript(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if _, err := deps.VideoService.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, videosService.ErrVideoNotFound) {
				types.RespondNotFound(c, "Video not found")
				return
			}
			types.RespondError(c, http.StatusInternalServerError, "Failed to load video")
			return
		}

		transcript, err := deps.TranscriptService.LatestProcessed(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, transcripts.ErrTranscriptNotFound) {
				types.RespondNotFound(c, "No transcript available for this video yet")
				return
			}
			types.RespondError(c, http.StatusInternalServerError, "Failed to load transcript")
			return
		}

		c.JSON(http.StatusOK, types.TranscriptResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Transcript:   transcript,
		})
	}
}
