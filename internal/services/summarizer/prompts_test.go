package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidigest/digest-api/internal/models"
)

func TestSystemPromptVariesByDigestType(t *testing.T) {
	seen := map[string]bool{}
	for _, digestType := range []models.DigestType{
		models.DigestTypeSummary,
		models.DigestTypeDetailed,
		models.DigestTypeHighlights,
		models.DigestTypeConcise,
	} {
		prompt := systemPrompt(digestType)
		assert.NotEmpty(t, prompt)
		assert.False(t, seen[prompt], "duplicate prompt for %s", digestType)
		seen[prompt] = true
	}

	assert.Equal(t, systemPrompt(models.DigestTypeSummary), systemPrompt("unknown"))
}

func TestUserPromptIncludesChapters(t *testing.T) {
	req := Request{
		VideoTitle:   "Learning Go",
		ChannelTitle: "Gopher Academy",
		Duration:     600,
		Chapters: []models.Chapter{
			{Timestamp: "00:00", Title: "Intro"},
			{Timestamp: "05:30", Title: "Generics"},
		},
		Transcript: "hello world",
	}

	prompt := userPrompt(req, 0)
	assert.Contains(t, prompt, "Title: Learning Go")
	assert.Contains(t, prompt, "Channel: Gopher Academy")
	assert.Contains(t, prompt, "Duration: 600 seconds")
	assert.Contains(t, prompt, "00:00: Intro")
	assert.Contains(t, prompt, "05:30: Generics")
	assert.Contains(t, prompt, "hello world")
}

func TestUserPromptNoChapters(t *testing.T) {
	prompt := userPrompt(Request{VideoTitle: "t", Transcript: "x"}, 0)
	assert.Contains(t, prompt, "Chapters:\nNone")
}

func TestTruncateTranscript(t *testing.T) {
	long := strings.Repeat("a", 100)

	assert.Equal(t, long, truncateTranscript(long, 0))
	assert.Equal(t, long, truncateTranscript(long, 100))

	truncated := truncateTranscript(long, 50)
	assert.True(t, strings.HasPrefix(truncated, strings.Repeat("a", 50)))
	assert.Contains(t, truncated, "[transcript truncated]")
}
