package videos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	videosService "github.com/vidigest/digest-api/internal/services/videos"
)

// Delete removes a video along with its transcripts and digests
//
// @Summary Delete a video
// @Param id path int true "Video ID"
// @Success 204
// @Router /api/v1/videos/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := deps.VideoService.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, videosService.ErrVideoNotFound) {
				types.RespondNotFound(c, "Video not found")
				return
			}
			types.RespondError(c, http.StatusInternalServerError, "Failed to delete video")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
