package types

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidigest/digest-api/internal/models"
)

// Status constants for API responses
const (
	StatusOK     = "ok"
	StatusError  = "error"
	StatusQueued = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"` // Error code/type
}

// SubmitResponse acknowledges an accepted pipeline run
type SubmitResponse struct {
	BaseResponse
	Video *models.Video `json:"video"`
}

// VideoResponse for a single video
type VideoResponse struct {
	BaseResponse
	Video *models.Video `json:"video"`
}

// VideosResponse for paginated video lists
type VideosResponse struct {
	BaseResponse
	Videos []models.Video `json:"videos"`
	Count  int            `json:"count"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

// TranscriptResponse for a video's current transcript
type TranscriptResponse struct {
	BaseResponse
	Transcript *models.Transcript `json:"transcript"`
}

// DigestsResponse for a video's digests
type DigestsResponse struct {
	BaseResponse
	Digests []models.Digest `json:"digests"`
	Count   int             `json:"count"`
}

// RespondError writes a consistent error payload
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: message,
	})
}

// RespondErrorWithCode writes an error payload with a machine-readable code
func RespondErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   code,
	})
}

// RespondNotFound is a shorthand for 404 errors
func RespondNotFound(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, message)
}
