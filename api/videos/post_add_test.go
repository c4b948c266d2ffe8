package videos

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
)

func TestPostAddAccepts(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/videos", types.SubmitVideoRequest{
		URL: "https://www.youtube.com/watch?v=abc123",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)

	response := decodeJSON(t, w)
	assert.Equal(t, "queued", response["status"])

	require.Len(t, env.dispatch.enqueued, 1)
	assert.Equal(t, uint(1), env.dispatch.enqueued[0])
	assert.Equal(t, models.DigestTypeSummary, env.dispatch.types[0])
}

func TestPostAddCustomDigestType(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/videos", types.SubmitVideoRequest{
		URL:        "https://www.youtube.com/watch?v=abc123",
		DigestType: "highlights",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, env.dispatch.types, 1)
	assert.Equal(t, models.DigestTypeHighlights, env.dispatch.types[0])
}

func TestPostAddUnknownDigestType(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/videos", types.SubmitVideoRequest{
		URL:        "https://www.youtube.com/watch?v=abc123",
		DigestType: "poem",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.dispatch.enqueued)
}

func TestPostAddMissingURL(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/videos", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostAddExtractionErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", extractor.NotFoundError{Message: "gone"}, http.StatusNotFound, "video_not_found"},
		{"forbidden", extractor.ForbiddenError{Message: "private"}, http.StatusForbidden, "video_forbidden"},
		{"rate limited", extractor.RateLimitedError{Message: "slow down"}, http.StatusTooManyRequests, "rate_limited"},
		{"unsupported", extractor.UnsupportedContentError{Reason: "playlist"}, http.StatusUnprocessableEntity, "unsupported_content"},
		{"generic failure", extractor.ExtractionError{Message: "exploded"}, http.StatusBadGateway, "extraction_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.extract.meta = nil
			env.extract.err = tt.err

			w := env.request(t, http.MethodPost, "/api/v1/videos", types.SubmitVideoRequest{
				URL: "https://www.youtube.com/watch?v=abc123",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			response := decodeJSON(t, w)
			assert.Equal(t, tt.wantCode, response["error"])
			assert.Empty(t, env.dispatch.enqueued, "failed extraction must not enqueue a run")
		})
	}
}

func TestPostAddInvalidURLError(t *testing.T) {
	env := newTestEnv(t)
	env.extract.meta = nil
	env.extract.err = extractor.ErrInvalidURL

	w := env.request(t, http.MethodPost, "/api/v1/videos", types.SubmitVideoRequest{URL: "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
