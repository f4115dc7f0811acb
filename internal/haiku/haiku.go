package haiku

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Haiku is a three-line lyric excerpt whose syllable counts are exactly 5-7-5.
// Lines keep their original casing and punctuation; Title and Artist carry
// provenance and only matter for output formatting and the signature.
type Haiku struct {
	Title     string
	Artist    string
	Lines     [3]string
	Syllables [3]int
}

// Text returns the haiku body, lines joined with newlines.
func (h Haiku) Text() string {
	return strings.Join(h.Lines[:], "\n")
}

// Signature returns the deduplication fingerprint: a hex SHA-256 over the
// trimmed, lowercased title, artist, and body, in that order. Two haiku that
// differ only in letter case or surrounding whitespace share a signature.
func (h Haiku) Signature() string {
	sum := sha256.New()
	sum.Write([]byte(strings.ToLower(strings.TrimSpace(h.Title))))
	sum.Write([]byte(strings.ToLower(strings.TrimSpace(h.Artist))))
	sum.Write([]byte(strings.ToLower(strings.TrimSpace(h.Text()))))
	return hex.EncodeToString(sum.Sum(nil))
}
