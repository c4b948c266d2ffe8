package videos

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vidigest/digest-api/api/types"
	"github.com/vidigest/digest-api/internal/models"
	"github.com/vidigest/digest-api/internal/services/extractor"
	"github.com/vidigest/digest-api/internal/services/transcripts"
)

type fakeVideoService struct {
	video        *models.Video
	videoList    []models.Video
	createErr    error
	getErr       error
	resetErr     error
	deleteErr    error
	deletedID    uint
	createdMeta  *extractor.Metadata
	resetCalled  bool
	listedStatus models.ProcessingStatus
}

func (f *fakeVideoService) CreateOrReset(ctx context.Context, meta *extractor.Metadata) (*models.Video, error) {
	f.createdMeta = meta
	return f.video, f.createErr
}

func (f *fakeVideoService) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.video, nil
}

func (f *fakeVideoService) GetBySourceID(ctx context.Context, sourceID string) (*models.Video, error) {
	return f.video, f.getErr
}

func (f *fakeVideoService) List(ctx context.Context, page, limit int, status models.ProcessingStatus) ([]models.Video, int64, error) {
	f.listedStatus = status
	return f.videoList, int64(len(f.videoList)), nil
}

func (f *fakeVideoService) SetStatus(ctx context.Context, id uint, status models.ProcessingStatus) error {
	return nil
}

func (f *fakeVideoService) MarkCompleted(ctx context.Context, id uint) error { return nil }

func (f *fakeVideoService) MarkFailed(ctx context.Context, id uint, message string) error {
	return nil
}

func (f *fakeVideoService) ResetForReprocess(ctx context.Context, id uint) (*models.Video, error) {
	f.resetCalled = true
	if f.resetErr != nil {
		return nil, f.resetErr
	}
	return f.video, nil
}

func (f *fakeVideoService) Delete(ctx context.Context, id uint) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeTranscriptService struct {
	transcript *models.Transcript
	err        error
}

func (f *fakeTranscriptService) Acquire(ctx context.Context, videoID uint, meta *extractor.Metadata) (*models.Transcript, error) {
	return f.transcript, f.err
}

func (f *fakeTranscriptService) LatestProcessed(ctx context.Context, videoID uint) (*models.Transcript, error) {
	if f.transcript == nil {
		return nil, transcripts.ErrTranscriptNotFound
	}
	return f.transcript, f.err
}

func (f *fakeTranscriptService) ListByVideo(ctx context.Context, videoID uint) ([]models.Transcript, error) {
	if f.transcript == nil {
		return nil, nil
	}
	return []models.Transcript{*f.transcript}, nil
}

type fakeDigestService struct {
	digests []models.Digest
}

func (f *fakeDigestService) Reusable(ctx context.Context, videoID uint, digestType models.DigestType) (*models.Digest, error) {
	return nil, nil
}

func (f *fakeDigestService) Store(ctx context.Context, digest *models.Digest) error { return nil }

func (f *fakeDigestService) ListByVideo(ctx context.Context, videoID uint) ([]models.Digest, error) {
	return f.digests, nil
}

func (f *fakeDigestService) LogUsage(ctx context.Context, entry *models.ProcessingLog) error {
	return nil
}

type fakeExtractor struct {
	meta *extractor.Metadata
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (*extractor.Metadata, error) {
	return f.meta, f.err
}

type fakeDispatcher struct {
	enqueued []uint
	types    []models.DigestType
}

func (f *fakeDispatcher) Enqueue(videoID uint, digestType models.DigestType) bool {
	f.enqueued = append(f.enqueued, videoID)
	f.types = append(f.types, digestType)
	return true
}

func storedVideo() *models.Video {
	video := &models.Video{
		SourceID: "abc123",
		URL:      "https://www.youtube.com/watch?v=abc123",
		Title:    "Stored Video",
		Status:   models.StatusPending,
	}
	video.ID = 1
	return video
}

type testEnv struct {
	engine     *gin.Engine
	videos     *fakeVideoService
	transcript *fakeTranscriptService
	digest     *fakeDigestService
	extract    *fakeExtractor
	dispatch   *fakeDispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		videos:     &fakeVideoService{video: storedVideo()},
		transcript: &fakeTranscriptService{},
		digest:     &fakeDigestService{},
		extract:    &fakeExtractor{meta: &extractor.Metadata{SourceID: "abc123", Title: "Stored Video", Duration: 100}},
		dispatch:   &fakeDispatcher{},
	}

	deps := &types.Dependencies{
		VideoService:      env.videos,
		TranscriptService: env.transcript,
		DigestService:     env.digest,
		Extractor:         env.extract,
		Dispatcher:        env.dispatch,
		DefaultDigestType: models.DigestTypeSummary,
	}

	env.engine = gin.New()
	RegisterRoutes(env.engine.Group("/api/v1/videos"), deps)
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

