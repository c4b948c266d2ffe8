package videos

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/models"
	videosService "github.com/vidigest/digest-api/internal/services/videos"
)

func TestPostReprocessQueuesRun(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/videos/1/reprocess", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	assert.True(t, env.videos.resetCalled)
	require.Len(t, env.dispatch.enqueued, 1)
	assert.Equal(t, uint(1), env.dispatch.enqueued[0])
}

func TestPostReprocessWithDigestType(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/videos/1/reprocess", types.ReprocessRequest{
		DigestType: "concise",
	})
	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, env.dispatch.types, 1)
	assert.Equal(t, models.DigestTypeConcise, env.dispatch.types[0])
}

func TestPostReprocessNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.videos.resetErr = videosService.ErrVideoNotFound

	w := env.request(t, http.MethodPost, "/api/v1/videos/99/reprocess", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, env.dispatch.enqueued)
}

func TestPostReprocessConflictWhileActive(t *testing.T) {
	env := newTestEnv(t)
	env.videos.resetErr = fmt.Errorf("video 1 is currently PROCESSING and cannot be reprocessed")

	w := env.request(t, http.MethodPost, "/api/v1/videos/1/reprocess", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, env.dispatch.enqueued)
}
