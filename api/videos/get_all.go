package videos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/models"
)

// GetAll lists videos with pagination and optional status filtering
//
// @Summary List videos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Filter by processing status"
// @Success 200 {object} types.VideosResponse
// @Router /api/v1/videos [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		status := models.ProcessingStatus(c.Query("status"))
		switch status {
		case "", models.StatusPending, models.StatusProcessing, models.StatusSummarizing, models.StatusCompleted, models.StatusFailed:
		default:
			types.RespondError(c, http.StatusBadRequest, "Unknown status filter: "+string(status))
			return
		}

		videos, total, err := deps.VideoService.List(c.Request.Context(), page, limit, status)
		if err != nil {
			types.RespondError(c, http.StatusInternalServerError, "Failed to list videos")
			return
		}

		c.JSON(http.StatusOK, types.VideosResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Videos:       videos,
			Count:        len(videos),
			Total:        total,
			Page:         page,
			Limit:        limit,
		})
	}
}
