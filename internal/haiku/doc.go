// Package haiku defines the detected haiku record and its publishing text.
//
// A Haiku is immutable once built: three lyric lines kept verbatim, their
// syllable counts (always 5-7-5), and the song provenance. The Signature
// method produces the case- and whitespace-insensitive fingerprint the
// catalog uses as its dedup key.
package haiku
