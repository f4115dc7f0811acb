package lyrics

import (
	"regexp"
	"strings"
)

var (
	// annotationLinePattern matches lines that are nothing but a stage cue,
	// e.g. "[Chorus]" or "(Verse 1)".
	annotationLinePattern = regexp.MustCompile(`^\s*[\[(].*?[\])]\s*$`)

	// fillerLinePattern matches lines built entirely from ad-lib filler
	// tokens, optionally separated by spaces, commas, hyphens, or light
	// punctuation: "la la la", "na-na-na", "oooh yeah".
	fillerLinePattern = regexp.MustCompile(`^(?:la|na|o+h|yeah|ya|uh)+(?:[ ,\-!?.]*(?:la|na|o+h|yeah|ya|uh)+)*$`)
)

// IsNoise reports whether a lyric line carries no content for haiku purposes:
// blank lines, whole-line bracketed annotations, and repeated-filler lines.
// The filler match must cover the entire trimmed line.
func IsNoise(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if annotationLinePattern.MatchString(line) {
		return true
	}
	return fillerLinePattern.MatchString(strings.ToLower(trimmed))
}
