package videos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	videosService "github.com/vidigest/digest-api/internal/services/videos"
)

// GetDigests returns every digest generated for a video
//
// @Summary List a video's digests
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} types.DigestsResponse
// @Router /api/v1/videos/{id}/digests [get]
func GetDigests(deps *types.Dependencies) gin.HandlerFunc {
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

		digests, err := deps.DigestService.ListByVideo(c.Request.Context(), id)
		if err != nil {
			types.RespondError(c, http.StatusInternalServerError, "Failed to list digests")
			return
		}

		c.JSON(http.StatusOK, types.DigestsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Digests:      digests,
			Count:        len(digests),
		})
	}
}
