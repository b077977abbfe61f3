package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

// openTestStore opens a store against a temporary data directory and
// registers cleanup.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	cfg := types.Config{
		ListenAddr: ":0",
		DataDir:    t.TempDir(),
	}
	require.NoError(t, s.Open(cfg))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Open(t *testing.T) {
	tmpDir := t.TempDir()

	s := NewStore()
	cfg := types.Config{ListenAddr: ":0", DataDir: tmpDir}
	require.NoError(t, s.Open(cfg))

	// Database file created in the data dir.
	_, err := os.Stat(filepath.Join(tmpDir, dbFileName))
	require.NoError(t, err, "media.db not created")

	// Double open fails.
	assert.ErrorIs(t, s.Open(cfg), types.ErrStoreOpen)

	require.NoError(t, s.Close())
}

func TestStore_Open_InvalidConfig(t *testing.T) {
	s := NewStore()
	err := s.Open(types.Config{ListenAddr: ":0"})
	assert.ErrorIs(t, err, types.ErrDataDirEmpty)
}

func TestStore_Close(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Open(types.Config{ListenAddr: ":0", DataDir: t.TempDir()}))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close is idempotent")

	ctx := context.Background()
	_, err := s.List(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.Create(ctx, types.MediaItem{})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, s.Delete(ctx, 1), types.ErrStoreClosed)
	_, err = s.Search(ctx, "x")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestStore_CreateAssignsUniqueIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		created, err := s.Create(ctx, types.MediaItem{
			Title:    "Album",
			Artist:   "Artist",
			Location: "Shelf A",
			Format:   types.FormatCD,
		})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "id %d assigned twice", created.ID)
		seen[created.ID] = true
	}

	// Ids stay unique across the store's lifetime, even after deletes.
	var last int64
	for id := range seen {
		if id > last {
			last = id
		}
	}
	require.NoError(t, s.Delete(ctx, last))
	created, err := s.Create(ctx, types.MediaItem{
		Title:    "Another",
		Artist:   "Artist",
		Location: "Shelf A",
		Format:   types.FormatCD,
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, last, "AUTOINCREMENT must not reuse a deleted id")
}

func TestStore_CreateInvalidDoesNotMutate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before, err := s.Count(ctx)
	require.NoError(t, err)

	_, err = s.Create(ctx, types.MediaItem{Title: "No Artist", Format: "MiniDisc"})
	require.Error(t, err)

	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)

	after, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "invalid create must not change store size")
}

func TestStore_ListAfterCreates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	const n = 3
	for i := 0; i < n; i++ {
		_, err := s.Create(ctx, types.MediaItem{
			Title:    "Album",
			Artist:   "Artist",
			Location: "Shelf A",
			Format:   types.FormatVinyl,
		})
		require.NoError(t, err)
	}

	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n)

	// Insertion order by id.
	for i := 1; i < len(items); i++ {
		assert.Greater(t, items[i].ID, items[i-1].ID)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, types.MediaItem{
		Title:    "To Delete",
		Artist:   "Gone Soon",
		Location: "Box X",
		Format:   types.FormatVinyl,
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Second delete of the same id reports not found.
	assert.ErrorIs(t, s.Delete(ctx, created.ID), types.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 999999), types.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 0), types.ErrInvalidID)
}

func TestStore_Search(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	fixtures := []types.MediaItem{
		{Title: "Dark Side of the Moon", Artist: "Pink Floyd", Location: "Shelf Rock", Format: types.FormatVinyl},
		{Title: "OK Computer", Artist: "Radiohead", Location: "Shelf B2", Format: types.FormatCD},
		{Title: "Kind of Blue", Artist: "Miles Davis", Location: "Shelf Jazz", Format: types.FormatTape},
	}
	for _, f := range fixtures {
		_, err := s.Create(ctx, f)
		require.NoError(t, err)
	}

	t.Run("case-insensitive artist match", func(t *testing.T) {
		hits, err := s.Search(ctx, "floyd")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "Pink Floyd", hits[0].Artist)
	})

	t.Run("title match", func(t *testing.T) {
		hits, err := s.Search(ctx, "computer")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "OK Computer", hits[0].Title)
	})

	t.Run("location match", func(t *testing.T) {
		hits, err := s.Search(ctx, "jazz")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "Kind of Blue", hits[0].Title)
	})

	t.Run("format match", func(t *testing.T) {
		hits, err := s.Search(ctx, "vinyl")
		require.NoError(t, err)
		require.Len(t, hits, 1)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		hits, err := s.Search(ctx, "zeppelin")
		require.NoError(t, err)
		assert.NotNil(t, hits)
		assert.Empty(t, hits)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		hits, err := s.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, hits, len(fixtures))
	})
}

func TestStore_Search_EscapesLikeMetacharacters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, types.MediaItem{
		Title:    "100% Dynamite",
		Artist:   "Various",
		Location: "Shelf Ska",
		Format:   types.FormatCD,
	})
	require.NoError(t, err)
	_, err = s.Create(ctx, types.MediaItem{
		Title:    "100 Days",
		Artist:   "Various",
		Location: "Shelf Ska",
		Format:   types.FormatCD,
	})
	require.NoError(t, err)

	hits, err := s.Search(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, hits, 1, "%% must match literally, not as a wildcard")
	assert.Equal(t, "100% Dynamite", hits[0].Title)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := types.Config{ListenAddr: ":0", DataDir: tmpDir}
	ctx := context.Background()

	s := NewStore()
	require.NoError(t, s.Open(cfg))
	created, err := s.Create(ctx, types.MediaItem{
		Title:    "Still Here",
		Artist:   "Survivor",
		Location: "Shelf A",
		Format:   types.FormatCD,
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2 := NewStore()
	require.NoError(t, s2.Open(cfg))
	defer s2.Close()

	items, err := s2.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}
