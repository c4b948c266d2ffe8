package videos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	videosService "github.com/vidigest/digest-api/internal/services/videos"
)

// parseID reads and validates the :id path parameter. It writes the error
// response itself when the parameter is unusable.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		types.RespondError(c, http.StatusBadRequest, "Invalid video ID: "+raw)
		return 0, false
	}
	return uint(id), true
}

// GetByID returns one video with its pipeline state
//
// @Summary Get a video
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} types.VideoResponse
// @Router /api/v1/videos/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		video, err := deps.VideoService.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, videosService.ErrVideoNotFound) {
				types.RespondNotFound(c, "Video not found")
				return
			}
			types.RespondError(c, http.StatusInternalServerError, "Failed to load video")
			return
		}

		c.JSON(http.StatusOK, types.VideoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Video:        video,
		})
	}
}
