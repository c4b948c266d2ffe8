package transcripts

import (
	"sort"
	"strings"

	"github.com/vidigest/digest-api/internal/services/extractor"
)

// caption format the parser understands
const preferredExt = "json3"

// selection is a resolved caption choice
type selection struct {
	track    extractor.CaptionTrack
	language string
	manual   bool
}

// selectTrack picks the best caption track from the extracted metadata.
// Manual subtitles win over auto-generated captions; within each set the
// configured languages are tried in order, then prefixed variants of the
// first preference (en-US for en), then the alphabetically first language.
// The boolean is false when no track in a parseable format exists; the
// second boolean is false when there are no tracks at all.
func selectTrack(meta *extractor.Metadata, languages []string) (selection, bool, bool) {
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	sets := []struct {
		tracks map[string][]extractor.CaptionTrack
		manual bool
	}{
		{meta.Subtitles, true},
		{meta.AutomaticCaptions, false},
	}

	anyTracks := false
	for _, set := range sets {
		if len(set.tracks) == 0 {
			continue
		}
		anyTracks = true

		lang, ok := pickLanguage(set.tracks, languages)
		if !ok {
			continue
		}

		for _, track := range set.tracks[lang] {
			if track.Ext == preferredExt && track.URL != "" {
				return selection{track: track, language: lang, manual: set.manual}, true, true
			}
		}
	}

	return selection{}, false, anyTracks
}

// pickLanguage resolves the language key to use from a caption set
func pickLanguage(tracks map[string][]extractor.CaptionTrack, languages []string) (string, bool) {
	for _, lang := range languages {
		if _, ok := tracks[lang]; ok {
			return lang, true
		}
	}

	keys := make([]string, 0, len(tracks))
	for key := range tracks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Regional variants of the primary preference, en-US or en-GB for en
	prefix := languages[0] + "-"
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			return key, true
		}
	}

	if len(keys) > 0 {
		return keys[0], true
	}
	return "", false
}
