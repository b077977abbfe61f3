// Unit tests for first-run sample data seeding.
package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

func TestStore_Seed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inserted, err := s.Seed(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, len(sampleMedia)+4, inserted)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, inserted, count)

	// Every seeded record carries an allowed format and non-empty fields.
	items, err := s.List(ctx)
	require.NoError(t, err)
	for _, item := range items {
		assert.True(t, types.ValidFormat(item.Format), "seeded format %q", item.Format)
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Artist)
		assert.NotEmpty(t, item.Location)
	}
}

func TestStore_Seed_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Seed(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, len(sampleMedia), first)

	second, err := s.Seed(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, second, "seeding a non-empty store must be a no-op")

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleMedia), count)
}

func TestStore_Seed_SkipsNonEmptyStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, types.MediaItem{
		Title:    "Pre-existing",
		Artist:   "Owner",
		Location: "Shelf A",
		Format:   types.FormatCD,
	})
	require.NoError(t, err)

	inserted, err := s.Seed(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_Seed_Closed(t *testing.T) {
	s := NewStore()
	_, err := s.Seed(context.Background(), 0)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
