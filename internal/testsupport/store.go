package testsupport

import (
	"testing"

	"haikufind/internal/catalog"
	"haikufind/internal/config"
)

// MustOpenStore opens a catalog store against the test config and closes it
// when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
