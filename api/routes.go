package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/api/health"
	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/api/version"
	"github.com/vidigest/digest-api/api/videos"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are required")
	}

	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	// Video routes carry the submission endpoint, which triggers scraper
	// calls, so they get a tighter per-client limit (5 req/s, burst of 10)
	videoGroup := v1.Group("/videos")
	videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	videos.RegisterRoutes(videoGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
