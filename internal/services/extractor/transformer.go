package extractor

import (
	"fmt"
	"strings"
)

// Normalize converts a raw scraper payload into pipeline metadata
func Normalize(videoURL string, info *Info) *Metadata {
	channelTitle := info.Channel
	if channelTitle == "" {
		channelTitle = info.Uploader
	}

	canonicalURL := info.WebpageURL
	if canonicalURL == "" {
		canonicalURL = videoURL
	}

	meta := &Metadata{
		SourceID:          info.ID,
		URL:               canonicalURL,
		Title:             strings.TrimSpace(info.Title),
		Description:       info.Description,
		Duration:          int(info.Duration),
		ThumbnailURL:      info.Thumbnail,
		ChannelID:         info.ChannelID,
		ChannelTitle:      channelTitle,
		UploadDate:        info.UploadDate,
		ViewCount:         info.ViewCount,
		LikeCount:         info.LikeCount,
		Tags:              info.Tags,
		Categories:        info.Categories,
		Subtitles:         info.Subtitles,
		AutomaticCaptions: info.AutomaticCaptions,
	}

	for _, raw := range info.Chapters {
		meta.Chapters = append(meta.Chapters, Chapter{
			Start:     raw.StartTime,
			End:       raw.EndTime,
			Timestamp: formatTimestamp(raw.StartTime),
			Title:     strings.TrimSpace(raw.Title),
		})
	}

	return meta
}

// formatTimestamp renders an offset in seconds as MM:SS. Offsets past an
// hour keep accumulating minutes rather than rolling into an hour field,
// so chapter lines stay aligned in prompt text.
func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
