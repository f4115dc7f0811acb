// Package scanner drives CSV lyric ingestion through detection and caching.
//
// A scan reads one delimited file with title/artist/lyrics columns, runs the
// haiku detector over every row, and inserts each detected haiku into the
// catalog keyed by signature. Rescanning the same file is idempotent. A lock
// file beside the database serializes concurrent scans.
package scanner
