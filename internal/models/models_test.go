package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoIsTerminal(t *testing.T) {
	tests := []struct {
		status   ProcessingStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusProcessing, false},
		{StatusSummarizing, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			v := &Video{Status: tt.status}
			assert.Equal(t, tt.terminal, v.IsTerminal())
		})
	}
}

func TestVideoIsProcessing(t *testing.T) {
	assert.True(t, (&Video{Status: StatusProcessing}).IsProcessing())
	assert.True(t, (&Video{Status: StatusSummarizing}).IsProcessing())
	assert.False(t, (&Video{Status: StatusPending}).IsProcessing())
	assert.False(t, (&Video{Status: StatusCompleted}).IsProcessing())
}

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"go", "tutorial"}

	value, err := list.Value()
	require.NoError(t, err)

	var decoded StringList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)
}

func TestStringListScanNil(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(nil))
	assert.Nil(t, list)
}

func TestChapterListRoundTrip(t *testing.T) {
	end := 125.0
	chapters := ChapterList{
		{Start: 0, Timestamp: "00:00", Title: "Intro"},
		{Start: 65, End: &end, Timestamp: "01:05", Title: "Setup"},
	}

	value, err := chapters.Value()
	require.NoError(t, err)

	var decoded ChapterList
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, 2)
	assert.Equal(t, "01:05", decoded[1].Timestamp)
	require.NotNil(t, decoded[1].End)
	assert.Equal(t, end, *decoded[1].End)
}

func TestTranscriptText(t *testing.T) {
	content := "hello world"
	tr := &Transcript{Content: &content}
	assert.Equal(t, "hello world", tr.Text())

	empty := &Transcript{}
	assert.Equal(t, "", empty.Text())
}

func TestTranscriptIsProcessed(t *testing.T) {
	assert.True(t, (&Transcript{Status: TranscriptStatusProcessed}).IsProcessed())
	assert.False(t, (&Transcript{Status: TranscriptStatusPending}).IsProcessed())
	assert.False(t, (&Transcript{Status: TranscriptStatusFailed}).IsProcessed())
}

func TestDigestHasContent(t *testing.T) {
	assert.True(t, (&Digest{Content: "a digest", GeneratedAt: time.Now()}).HasContent())
	assert.False(t, (&Digest{}).HasContent())
}
