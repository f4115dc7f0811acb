package scanner

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"haikufind/internal/catalog"
	"haikufind/internal/lyrics"
)

const (
	unknownTitle  = "Unknown Title"
	unknownArtist = "Unknown Artist"
)

// Summary reports the outcome of a scan.
type Summary struct {
	Rows     int
	Found    int
	Inserted int
}

// Scanner feeds CSV lyric rows through detection into the catalog.
type Scanner struct {
	store *catalog.Store
	log   *slog.Logger
}

// New builds a scanner. A nil logger discards progress output.
func New(store *catalog.Store, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{store: store, log: log}
}

// ScanCSV reads the file at path and caches every detected haiku. Rows
// missing a title or artist fall back to placeholder provenance; rows
// missing lyrics yield nothing. Only one scan may run against a database at
// a time.
func (s *Scanner) ScanCSV(ctx context.Context, path string) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, fmt.Errorf("csv not found: %s", path)
		}
		return Summary{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	lock := flock.New(s.store.Path() + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return Summary{}, fmt.Errorf("another scan is already running against %s", s.store.Path())
	}
	defer func() { _ = lock.Unlock() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Summary{}, fmt.Errorf("csv is empty: %s", path)
		}
		return Summary{}, fmt.Errorf("read csv header: %w", err)
	}
	columns := mapColumns(header)
	if _, ok := columns["lyrics"]; !ok {
		return Summary{}, fmt.Errorf("csv has no lyrics column: %s", path)
	}

	var summary Summary
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read csv row %d: %w", summary.Rows+1, err)
		}
		summary.Rows++

		title := fieldOr(record, columns, "title", unknownTitle)
		artist := fieldOr(record, columns, "artist", unknownArtist)
		lyricsText := fieldOr(record, columns, "lyrics", "")

		found := lyrics.Detect(title, artist, lyricsText)
		summary.Found += len(found)
		for _, h := range found {
			inserted, err := s.store.InsertIfAbsent(ctx, h)
			if err != nil {
				return summary, fmt.Errorf("cache haiku from %q: %w", title, err)
			}
			if inserted {
				summary.Inserted++
			}
			s.log.Debug("haiku detected",
				"title", title,
				"artist", artist,
				"signature", h.Signature(),
				"inserted", inserted,
			)
		}
	}

	s.log.Info("scan complete",
		"csv", path,
		"rows", summary.Rows,
		"found", summary.Found,
		"inserted", summary.Inserted,
	)
	return summary, nil
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func fieldOr(record []string, columns map[string]int, name, fallback string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return fallback
	}
	value := strings.TrimSpace(record[idx])
	if value == "" {
		return fallback
	}
	return value
}
