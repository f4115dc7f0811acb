package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"haikufind/internal/config"
	"haikufind/internal/haiku"
	"haikufind/internal/services"
)

// ErrAlreadyPublished indicates a haiku whose used-at transition was already
// recorded; the stored publish metadata is never overwritten.
var ErrAlreadyPublished = errors.New("haiku already published")

// Store manages haiku persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// InsertIfAbsent caches a detected haiku keyed by its signature. Returns
// false without error when a record with the same signature already exists.
func (s *Store) InsertIfAbsent(ctx context.Context, h haiku.Haiku) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO haikus (
            id, sig, title, artist, line1, line2, line3, s1, s2, s3, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		h.Signature(),
		h.Title,
		h.Artist,
		h.Lines[0],
		h.Lines[1],
		h.Lines[2],
		h.Syllables[0],
		h.Syllables[1],
		h.Syllables[2],
		now,
	)
	if err != nil {
		return false, fmt.Errorf("insert haiku: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

const selectColumns = `id, sig, title, artist, line1, line2, line3, s1, s2, s3, created_at, published_at, external_id`

// PickUnused selects one haiku that has not been published yet, or nil when
// every cached haiku is used. Selection order is unspecified.
func (s *Store) PickUnused(ctx context.Context) (*StoredHaiku, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM haikus WHERE published_at IS NULL ORDER BY RANDOM() LIMIT 1`)
	record, err := scanHaiku(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("pick unused haiku: %w", err)
	}
	return record, nil
}

// GetBySignature fetches a cached haiku by its dedup key.
func (s *Store) GetBySignature(ctx context.Context, sig string) (*StoredHaiku, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM haikus WHERE sig = ?`, sig)
	record, err := scanHaiku(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.Wrap(services.ErrNotFound, "catalog", "get", fmt.Sprintf("no haiku with signature %s", sig), nil)
		}
		return nil, fmt.Errorf("get haiku: %w", err)
	}
	return record, nil
}

// MarkPublished records the used-at transition for a haiku. The transition
// happens at most once: a record that is already published keeps its original
// published_at and external_id and the call fails with ErrAlreadyPublished.
// The external id may be empty for dry-run publishes.
func (s *Store) MarkPublished(ctx context.Context, sig, externalID string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE haikus SET published_at = ?, external_id = ? WHERE sig = ? AND published_at IS NULL`,
		at.UTC().Format(time.RFC3339Nano),
		nullableString(externalID),
		sig,
	)
	if err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		// Either the signature is unknown or the record is already used;
		// a successful lookup means the guard rejected the update.
		if _, getErr := s.GetBySignature(ctx, sig); getErr != nil {
			return getErr
		}
		return fmt.Errorf("%w: %s", ErrAlreadyPublished, sig)
	}
	return nil
}

// List returns cached haiku ordered by creation time, optionally restricted
// to unused records.
func (s *Store) List(ctx context.Context, onlyUnused bool) ([]StoredHaiku, error) {
	query := `SELECT ` + selectColumns + ` FROM haikus`
	if onlyUnused {
		query += ` WHERE published_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list haikus: %w", err)
	}
	defer rows.Close()

	var records []StoredHaiku
	for rows.Next() {
		record, err := scanHaiku(rows)
		if err != nil {
			return nil, fmt.Errorf("scan haiku: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate haikus: %w", err)
	}
	return records, nil
}

// Stats reports cache totals.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(published_at IS NULL), 0) FROM haikus`,
	).Scan(&stats.Total, &stats.Unused)
	if err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	stats.Published = stats.Total - stats.Unused
	return stats, nil
}

// Clear removes every cached haiku.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM haikus`)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHaiku(row rowScanner) (*StoredHaiku, error) {
	var (
		record      StoredHaiku
		h           haiku.Haiku
		createdAt   string
		publishedAt sql.NullString
		externalID  sql.NullString
	)
	err := row.Scan(
		&record.ID,
		&record.Signature,
		&h.Title,
		&h.Artist,
		&h.Lines[0],
		&h.Lines[1],
		&h.Lines[2],
		&h.Syllables[0],
		&h.Syllables[1],
		&h.Syllables[2],
		&createdAt,
		&publishedAt,
		&externalID,
	)
	if err != nil {
		return nil, err
	}

	record.Haiku = h
	if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		record.CreatedAt = parsed
	}
	if publishedAt.Valid {
		if parsed, parseErr := time.Parse(time.RFC3339Nano, publishedAt.String); parseErr == nil {
			record.PublishedAt = &parsed
		}
	}
	if externalID.Valid {
		record.ExternalID = externalID.String
	}
	return &record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
