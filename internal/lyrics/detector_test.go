package lyrics_test

import (
	"strings"
	"testing"

	"haikufind/internal/lyrics"
)

const (
	fiveLine      = "An old silent pond"
	sevenLine     = "A frog jumps into the pond"
	fiveLineClose = "Splash! Silence again"
)

func TestDetectFindsSingleHaiku(t *testing.T) {
	text := strings.Join([]string{
		"Old pond",
		"[Verse]",
		fiveLine,
		sevenLine,
		fiveLineClose,
	}, "\n")

	found := lyrics.Detect("Old Pond", "Basho", text)
	if len(found) != 1 {
		t.Fatalf("Detect returned %d haiku, want 1", len(found))
	}
	h := found[0]
	if h.Lines != [3]string{fiveLine, sevenLine, fiveLineClose} {
		t.Errorf("unexpected lines: %q", h.Lines)
	}
	if h.Syllables != [3]int{5, 7, 5} {
		t.Errorf("unexpected syllables: %v", h.Syllables)
	}
	if h.Title != "Old Pond" || h.Artist != "Basho" {
		t.Errorf("provenance not carried: %q / %q", h.Title, h.Artist)
	}
}

func TestDetectRemovesNoiseFromAdjacency(t *testing.T) {
	// The noise line sits inside what would otherwise be a matching window;
	// the window must close over it, not include a gap.
	text := strings.Join([]string{
		fiveLine,
		"[Chorus]",
		"la la la",
		sevenLine,
		"",
		fiveLineClose,
	}, "\n")

	found := lyrics.Detect("t", "a", text)
	if len(found) != 1 {
		t.Fatalf("Detect returned %d haiku, want 1", len(found))
	}
}

func TestDetectOverlappingWindows(t *testing.T) {
	text := strings.Join([]string{
		fiveLine,
		sevenLine,
		fiveLineClose,
		sevenLine,
		fiveLine,
	}, "\n")

	found := lyrics.Detect("t", "a", text)
	if len(found) != 2 {
		t.Fatalf("Detect returned %d haiku, want 2", len(found))
	}
	if found[0].Lines[2] != fiveLineClose || found[1].Lines[0] != fiveLineClose {
		t.Error("windows do not share the middle line in index order")
	}
}

func TestDetectTooFewLines(t *testing.T) {
	if got := lyrics.Detect("t", "a", fiveLine+"\n"+sevenLine); got != nil {
		t.Errorf("expected nil for two content lines, got %d haiku", len(got))
	}
	if got := lyrics.Detect("t", "a", ""); got != nil {
		t.Errorf("expected nil for empty lyrics, got %d haiku", len(got))
	}
}

func TestDetectHandlesWindowsNewlines(t *testing.T) {
	unix := lyrics.Detect("t", "a", fiveLine+"\n"+sevenLine+"\n"+fiveLineClose)
	windows := lyrics.Detect("t", "a", fiveLine+"\r\n"+sevenLine+"\r\n"+fiveLineClose)
	if len(unix) != 1 || len(windows) != 1 {
		t.Fatalf("newline conventions disagree: unix=%d windows=%d", len(unix), len(windows))
	}
	if unix[0].Signature() != windows[0].Signature() {
		t.Error("signatures differ across newline conventions")
	}
}

func TestDetectTrimsLines(t *testing.T) {
	text := "  " + fiveLine + "  \n" + sevenLine + "\n\t" + fiveLineClose
	found := lyrics.Detect("t", "a", text)
	if len(found) != 1 {
		t.Fatalf("Detect returned %d haiku, want 1", len(found))
	}
	if found[0].Lines[0] != fiveLine {
		t.Errorf("line not trimmed: %q", found[0].Lines[0])
	}
}
