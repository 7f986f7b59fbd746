package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/memory"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/sqlite"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

func TestOpenStore(t *testing.T) {
	t.Run("json backend", func(t *testing.T) {
		dir := t.TempDir()
		store, closeStore := openStore(domain.AppSettings{
			Backend:    domain.StoreBackendJSON,
			CorpusPath: filepath.Join(dir, "index.json"),
		})
		defer closeStore()

		require.NotNil(t, store)
		assert.IsType(t, &jsonfile.Store{}, store)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		store, closeStore := openStore(domain.AppSettings{
			Backend:    domain.StoreBackendSQLite,
			CorpusPath: t.TempDir(),
		})
		defer closeStore()

		require.NotNil(t, store)
		assert.IsType(t, &sqlite.Store{}, store)
	})

	t.Run("unopenable path falls back to memory", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

		store, closeStore := openStore(domain.AppSettings{
			Backend:    domain.StoreBackendJSON,
			CorpusPath: filepath.Join(blocker, "nested", "index.json"),
		})
		defer closeStore()

		assert.IsType(t, &memory.TranscriptStore{}, store)
	})
}

func TestFetchAPIKey(t *testing.T) {
	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "env-key")
		key := fetchAPIKey(stubConfig{keyFetchAPIKey: "file-key"})
		assert.Equal(t, "env-key", key)
	})

	t.Run("falls back to config", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "")
		key := fetchAPIKey(stubConfig{keyFetchAPIKey: "file-key"})
		assert.Equal(t, "file-key", key)
	})

	t.Run("empty when unset", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "")
		assert.Empty(t, fetchAPIKey(stubConfig{}))
	})
}

// stubConfig is a map-backed ConfigStore for the key-resolution tests.
type stubConfig map[string]string

func (c stubConfig) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}
func (c stubConfig) GetString(key string) string          { return c[key] }
func (c stubConfig) GetInt(string) int                    { return 0 }
func (c stubConfig) GetFloat(string) float64              { return 0 }
func (c stubConfig) GetBool(string) bool                  { return false }
func (c stubConfig) GetStringSlice(string) []string       { return nil }
func (c stubConfig) Set(string, any) error                { return nil }
func (c stubConfig) Save() error                          { return nil }
func (c stubConfig) Load() error                          { return nil }
func (c stubConfig) Path() string                         { return "" }
