package extractor

// Info is the raw payload returned by the scraping backend. Field names
// follow the yt-dlp JSON dump so any compatible backend can serve it.
type Info struct {
	ID                string                    `json:"id"`
	Type              string                    `json:"_type,omitempty"`
	Title             string                    `json:"title"`
	Description       string                    `json:"description"`
	Duration          float64                   `json:"duration"`
	Thumbnail         string                    `json:"thumbnail"`
	ChannelID         string                    `json:"channel_id"`
	Channel           string                    `json:"channel"`
	Uploader          string                    `json:"uploader"`
	UploadDate        string                    `json:"upload_date"`
	ViewCount         *int64                    `json:"view_count"`
	LikeCount         *int64                    `json:"like_count"`
	Tags              []string                  `json:"tags"`
	Categories        []string                  `json:"categories"`
	Chapters          []rawChapter              `json:"chapters"`
	Subtitles         map[string][]CaptionTrack `json:"subtitles"`
	AutomaticCaptions map[string][]CaptionTrack `json:"automatic_captions"`
	IsLive            bool                      `json:"is_live"`
	Availability      string                    `json:"availability"`
	WebpageURL        string                    `json:"webpage_url"`
}

type rawChapter struct {
	StartTime float64  `json:"start_time"`
	EndTime   *float64 `json:"end_time"`
	Title     string   `json:"title"`
}

// CaptionTrack describes one downloadable caption rendition
type CaptionTrack struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Chapter is a normalized chapter marker with a display timestamp
type Chapter struct {
	Start     float64  `json:"start"`
	End       *float64 `json:"end,omitempty"`
	Timestamp string   `json:"timestamp"`
	Title     string   `json:"title"`
}

// Metadata is the normalized extraction result consumed by the pipeline
type Metadata struct {
	SourceID     string
	URL          string
	Title        string
	Description  string
	Duration     int
	ThumbnailURL string
	ChannelID    string
	ChannelTitle string
	UploadDate   string
	ViewCount    *int64
	LikeCount    *int64
	Tags         []string
	Categories   []string
	Chapters     []Chapter

	// Caption tracks keyed by language code, manual and auto-generated kept
	// apart so the transcript acquirer can prefer manual tracks.
	Subtitles         map[string][]CaptionTrack
	AutomaticCaptions map[string][]CaptionTrack
}

// HasCaptions reports whether any caption track, manual or automatic, exists
func (m *Metadata) HasCaptions() bool {
	return len(m.Subtitles) > 0 || len(m.AutomaticCaptions) > 0
}
