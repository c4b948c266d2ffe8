package videos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	videosService "github.com/vidigest/digest-api/internal/services/videos"
)

// PostReprocess resets a terminal video and schedules a fresh pipeline run
//
// @Summary Reprocess a video
// @Produce json
// @Param id path int true "Video ID"
// @Success 202 {object} types.SubmitResponse
// @Router /api/v1/videos/{id}/reprocess [post]
func PostReprocess(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req types.ReprocessRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				types.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
				return
			}
		}

		digestType, err := types.ParseDigestType(req.DigestType, deps.DefaultDigestType)
		if err != nil {
			types.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}

		video, err := deps.VideoService.ResetForReprocess(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, videosService.ErrVideoNotFound) {
				types.RespondNotFound(c, "Video not found")
				return
			}
			types.RespondError(c, http.StatusConflict, err.Error())
			return
		}

		deps.Dispatcher.Enqueue(video.ID, digestType)

		c.JSON(http.StatusAccepted, types.SubmitResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusQueued,
				Message: "Video queued for reprocessing",
			},
			Video: video,
		})
	}
}
