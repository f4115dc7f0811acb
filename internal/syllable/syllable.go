package syllable

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const vowels = "aeiouy"

// irregular overrides the heuristic for common words whose vowel groups do
// not line up with their spoken syllables (silent letters, collapsed vowel
// sequences, -ould words). Lookup happens after normalization, so casing and
// punctuation never matter. This is fixed domain knowledge, not configuration.
var irregular = map[string]int{
	"queue":    1,
	"people":   2,
	"choir":    1,
	"hour":     1,
	"our":      1,
	"fire":     1,
	"one":      1,
	"two":      1,
	"once":     1,
	"blood":    1,
	"breathe":  1,
	"breathed": 1,
	"every":    2,
	"even":     2,
	"ever":     2,
	"business": 2,
	"family":   3,
	"poem":     2,
	"poet":     2,
	"quiet":    2,
	"quietly":  3,
	"science":  2,
	"giant":    2,
}

var (
	nonLetterPattern  = regexp.MustCompile(`[^a-z]`)
	vowelGroupPattern = regexp.MustCompile(`[aeiouy]+`)
	annotationPattern = regexp.MustCompile(`[\[(].*?[\])]`)
	wordPattern       = regexp.MustCompile(`[A-Za-z']+`)
)

// asciiFold decomposes accented letters and drops the combining marks so
// accented characters count the same as their plain ASCII forms.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CountWord estimates the syllable count of a single word. The word is
// lowercased and stripped to letters first; an empty result counts as zero.
// Every non-empty word counts as at least one syllable.
func CountWord(word string) int {
	w := strings.ToLower(word)
	w = nonLetterPattern.ReplaceAllString(w, "")
	if w == "" {
		return 0
	}
	if n, ok := irregular[w]; ok {
		return n
	}

	count := len(vowelGroupPattern.FindAllString(w, -1))

	// Trailing silent e. Words ending in "ye" keep the group ("goodbye").
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ye") {
		count--
	}

	// A consonant+le ending carries its own syllable ("table", "little").
	if strings.HasSuffix(w, "le") && len(w) > 2 && !strings.ContainsRune(vowels, rune(w[len(w)-3])) {
		count++
	}

	if count < 1 {
		count = 1
	}
	return count
}

// CountLine estimates the syllable count of a lyric line. Bracketed and
// parenthesized annotation spans are removed first, accented letters are
// folded to ASCII, then maximal runs of letters and apostrophes are counted
// as words.
func CountLine(line string) int {
	line = annotationPattern.ReplaceAllString(line, "")
	line = foldASCII(line)
	total := 0
	for _, w := range wordPattern.FindAllString(line, -1) {
		total += CountWord(w)
	}
	return total
}

func foldASCII(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return folded
}
