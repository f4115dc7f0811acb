package catalog

import (
	"time"

	"haikufind/internal/haiku"
)

// StoredHaiku is a cached haiku record with its persistence metadata.
type StoredHaiku struct {
	ID          string
	Signature   string
	Haiku       haiku.Haiku
	CreatedAt   time.Time
	PublishedAt *time.Time
	ExternalID  string
}

// Published reports whether the haiku has been marked used.
func (s *StoredHaiku) Published() bool {
	return s != nil && s.PublishedAt != nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Total     int
	Unused    int
	Published int
}
