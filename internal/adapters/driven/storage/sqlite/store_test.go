package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := testStore(t)

	// Migrated schema accepts a write straight away
	err := store.SaveAll(context.Background(), []domain.TranscriptRecord{
		{ID: "a", Title: "Alpha", DateRaw: "20230101", Text: "text"},
	})
	assert.NoError(t, err)
}

func TestNewStore_IdempotentMigrations(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.SaveAll(context.Background(), []domain.TranscriptRecord{
		{ID: "a", Title: "Alpha", Text: "text"},
	}))
	require.NoError(t, store1.Close())

	// Re-opening the same database must not re-run applied migrations
	store2, err := NewStore(dir)
	require.NoError(t, err)
	defer store2.Close()

	n, err := store2.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_LoadAll_EmptyArchive(t *testing.T) {
	store := testStore(t)

	_, err := store.LoadAll(context.Background())

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestStore_SaveAllAndLoadAll(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	in := []domain.TranscriptRecord{
		{ID: "b", Title: "Later", DateRaw: "20230601", Text: "later text"},
		{ID: "a", Title: "Earlier", DateRaw: "20220101", Text: "earlier text"},
	}
	require.NoError(t, store.SaveAll(ctx, in))

	out, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Ordered oldest first by raw date
	assert.Equal(t, "Earlier", out[0].Title)
	assert.Equal(t, "Later", out[1].Title)

	require.NotNil(t, out[0].Date)
	assert.Equal(t, "2022-01-01", out[0].Date.Format("2006-01-02"))
}

func TestStore_SaveAll_UpsertsExisting(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.TranscriptRecord{
		{ID: "a", Title: "Original", DateRaw: "20230101", Text: "v1"},
	}))
	require.NoError(t, store.SaveAll(ctx, []domain.TranscriptRecord{
		{ID: "a", Title: "Updated", DateRaw: "20230101", Text: "v2"},
	}))

	out, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Updated", out[0].Title)
	assert.Equal(t, "v2", out[0].Text)
}

func TestStore_SaveAll_GeneratesIDs(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.TranscriptRecord{
		{Title: "No ID", DateRaw: "20230101", Text: "text"},
	}))

	out, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].ID)
}

func TestStore_SaveAll_AccumulatesAcrossIngests(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.TranscriptRecord{
		{ID: "a", Title: "First", Text: "one"},
	}))
	require.NoError(t, store.SaveAll(ctx, []domain.TranscriptRecord{
		{ID: "b", Title: "Second", Text: "two"},
	}))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStore_UndatedRecordsLoadWithNilDate(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.TranscriptRecord{
		{ID: "a", Title: "Undated", DateRaw: "", Text: "text"},
	}))

	out, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Date)
	assert.Equal(t, "Unknown Date", out[0].DateLabel())
}
