package lyrics

import (
	"strings"

	"haikufind/internal/haiku"
	"haikufind/internal/syllable"
)

// Detect scans lyric text for three consecutive content lines counting
// exactly 5-7-5 syllables and returns one Haiku per matching window, in
// window order. Overlapping windows are reported independently. Fewer than
// three content lines yields nil.
func Detect(title, artist, lyricsText string) []haiku.Haiku {
	lines := ContentLines(lyricsText)
	if len(lines) < 3 {
		return nil
	}

	var found []haiku.Haiku
	counts := make([]int, len(lines))
	for i, line := range lines {
		counts[i] = syllable.CountLine(line)
	}
	for i := 0; i+2 < len(lines); i++ {
		if counts[i] == 5 && counts[i+1] == 7 && counts[i+2] == 5 {
			found = append(found, haiku.Haiku{
				Title:     title,
				Artist:    artist,
				Lines:     [3]string{lines[i], lines[i+1], lines[i+2]},
				Syllables: [3]int{5, 7, 5},
			})
		}
	}
	return found
}

// ContentLines splits lyric text on any newline convention, trims each line,
// and drops noise lines while preserving order.
func ContentLines(lyricsText string) []string {
	normalized := strings.ReplaceAll(lyricsText, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var content []string
	for _, raw := range strings.Split(normalized, "\n") {
		line := strings.TrimSpace(raw)
		if IsNoise(line) {
			continue
		}
		content = append(content, line)
	}
	return content
}
