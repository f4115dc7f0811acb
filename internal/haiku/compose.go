package haiku

import (
	"fmt"
	"unicode/utf8"
)

// MaxPostLength is the hard character limit of a published post.
const MaxPostLength = 280

// ComposeText renders a haiku for publishing, keeping the result within
// MaxPostLength characters. With attribution it tries the full
// "— Title by Artist" form first, then a title-only form, and falls back to
// the bare body truncated to the limit. The chosen candidate is returned
// verbatim.
func ComposeText(h Haiku, includeAttribution bool) string {
	body := h.Text()
	if includeAttribution {
		candidate := fmt.Sprintf("%s\n\n— %s by %s", body, h.Title, h.Artist)
		if runeLen(candidate) <= MaxPostLength {
			return candidate
		}
		candidate = fmt.Sprintf("%s\n\n— %s", body, h.Title)
		if runeLen(candidate) <= MaxPostLength {
			return candidate
		}
	}
	if runeLen(body) > MaxPostLength {
		return string([]rune(body)[:MaxPostLength])
	}
	return body
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
