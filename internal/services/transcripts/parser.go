package transcripts

import (
	"encoding/json"
	"fmt"
	"strings"
)

// json3 is the caption timedtext format: a flat list of events, each
// holding utf8 segments
type json3Payload struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	Segs []json3Segment `json:"segs"`
}

type json3Segment struct {
	UTF8 string `json:"utf8"`
}

// ParseJSON3 extracts plain text from a json3 caption payload. Segment
// text is joined with single spaces and whitespace runs are collapsed.
func ParseJSON3(data []byte) (string, error) {
	var payload json3Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decoding json3 captions: %w", err)
	}

	var builder strings.Builder
	for _, event := range payload.Events {
		for _, seg := range event.Segs {
			text := strings.TrimSpace(seg.UTF8)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(text)
		}
	}

	result := strings.Join(strings.Fields(builder.String()), " ")
	if result == "" {
		return "", fmt.Errorf("json3 captions contain no text")
	}

	return result, nil
}
