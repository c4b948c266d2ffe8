package transcripts

import "strings"

// Sentinel transcript bodies. When caption acquisition cannot produce real
// text the pipeline stores one of these instead of failing, so the video
// still reaches summarization in a degraded form.
const (
	SentinelNoCaptions        = "[Transcript unavailable: no captions]"
	SentinelUnsupportedFormat = "[Transcript unavailable: unsupported caption format]"
	SentinelDownloadFailed    = "[Transcript unavailable: download failed]"
	SentinelParseFailed       = "[Transcript unavailable: parse failed]"
)

const sentinelPrefix = "[Transcript unavailable"

// IsSentinel reports whether content is a degraded placeholder rather than
// real transcript text
func IsSentinel(content string) bool {
	return strings.HasPrefix(content, sentinelPrefix)
}
