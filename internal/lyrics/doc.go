// Package lyrics turns raw lyric text into detected haiku.
//
// Detection is a pure transformation: normalize newlines, drop noise lines
// (blanks, stage directions, repeated filler), then slide a three-line window
// over the surviving content lines and keep every window whose syllable
// counts are exactly 5-7-5. Windows may overlap; adjacency is measured among
// content lines, not original line numbers. Detection never errors; no
// matches is an empty result.
package lyrics
