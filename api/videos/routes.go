package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/types"
)

// RegisterRoutes registers video routes on the given router group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", PostAdd(deps))
	group.GET("", GetAll(deps))
	group.GET("/:id", GetByID(deps))
	group.DELETE("/:id", Delete(deps))
	group.POST("/:id/reprocess", PostReprocess(deps))
	group.GET("/:id/transcript", GetTranscript(deps))
	group.GET("/:id/digests", GetDigests(deps))
}
