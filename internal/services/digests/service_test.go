package digests

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vidigest/digest-api/internal/models"
)

func testService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Digest{}, &models.ProcessingLog{}))

	return NewService(NewRepository(db), NewLogRepository(db))
}

func TestReusableReturnsExistingDigest(t *testing.T) {
	service := testService(t)
	ctx := context.Background()

	stored := &models.Digest{
		VideoID:     1,
		DigestType:  models.DigestTypeSummary,
		Content:     "an existing summary",
		Model:       "gpt-4-turbo",
		GeneratedAt: time.Now().UTC(),
	}
	require.NoError(t, service.Store(ctx, stored))

	got, err := service.Reusable(ctx, 1, models.DigestTypeSummary)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "an existing summary", got.Content)
}

func TestReusableNilWhenMissing(t *testing.T) {
	service := testService(t)

	got, err := service.Reusable(context.Background(), 1, models.DigestTypeSummary)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReusableKeyedByType(t *testing.T) {
	service := testService(t)
	ctx := context.Background()

	require.NoError(t, service.Store(ctx, &models.Digest{
		VideoID:    1,
		DigestType: models.DigestTypeSummary,
		Content:    "summary content",
	}))

	got, err := service.Reusable(ctx, 1, models.DigestTypeHighlights)
	require.NoError(t, err)
	assert.Nil(t, got, "a summary digest must not satisfy a highlights request")
}

func TestReusableKeyedByVideo(t *testing.T) {
	service := testService(t)
	ctx := context.Background()

	require.NoError(t, service.Store(ctx, &models.Digest{
		VideoID:    1,
		DigestType: models.DigestTypeSummary,
		Content:    "summary content",
	}))

	got, err := service.Reusable(ctx, 2, models.DigestTypeSummary)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListByVideo(t *testing.T) {
	service := testService(t)
	ctx := context.Background()

	require.NoError(t, service.Store(ctx, &models.Digest{VideoID: 1, DigestType: models.DigestTypeSummary, Content: "a"}))
	require.NoError(t, service.Store(ctx, &models.Digest{VideoID: 1, DigestType: models.DigestTypeConcise, Content: "b"}))
	require.NoError(t, service.Store(ctx, &models.Digest{VideoID: 2, DigestType: models.DigestTypeSummary, Content: "c"}))

	list, err := service.ListByVideo(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLogUsage(t *testing.T) {
	service := testService(t)
	ctx := context.Background()

	require.NoError(t, service.LogUsage(ctx, &models.ProcessingLog{
		VideoID:      1,
		RequestType:  "summary",
		Model:        "gpt-4-turbo",
		TokensUsed:   1500,
		CostEstimate: 0.025,
	}))

	entries, err := service.logRepo.ListByVideo(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1500, entries[0].TokensUsed)
}
