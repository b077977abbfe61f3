// This file implements first-run sample data seeding for the media store.
package sqlite

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

// sampleItem describes a curated record inserted on first startup.
type sampleItem struct {
	title    string
	artist   string
	location string
	format   string
}

// sampleMedia is the fixed demonstration set seeded into an empty store.
var sampleMedia = []sampleItem{
	{"Dark Side of the Moon", "Pink Floyd", "Shelf Rock", types.FormatVinyl},
	{"OK Computer", "Radiohead", "Shelf B2", types.FormatCD},
	{"Kind of Blue", "Miles Davis", "Shelf Jazz", types.FormatVinyl},
	{"Rumours", "Fleetwood Mac", "Shelf Rock", types.FormatTape},
	{"Abbey Road", "The Beatles", "Shelf A1", types.FormatVinyl},
	{"Blue Train", "John Coltrane", "Shelf Jazz", types.FormatCD},
	{"Purple Rain", "Prince", "Box Pop", types.FormatTape},
	{"Nevermind", "Nirvana", "Shelf Grunge", types.FormatCD},
}

// randomTitleWords feed generated record titles. Artists come from gofakeit.
var randomTitleWords = []string{
	"Echoes", "Midnight", "Horizon", "Static", "Tides",
	"Embers", "Voltage", "Driftwood", "Aurora", "Basement",
}

// Seed populates an empty store with the curated sample set plus n randomly
// generated records. Seeding is idempotent: it only runs when the media table
// holds no rows, so restarts never duplicate the samples. Returns the number
// of records inserted.
func (s *Store) Seed(ctx context.Context, n int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return 0, types.ErrStoreClosed
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM media").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting media before seed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, sm := range sampleMedia {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO media (title, artist, location, format) VALUES (?, ?, ?, ?)",
			sm.title, sm.artist, sm.location, sm.format,
		)
		if err != nil {
			return 0, fmt.Errorf("seeding sample %q: %w", sm.title, err)
		}
		inserted++
	}

	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s %s",
			gofakeit.RandomString(randomTitleWords),
			gofakeit.RandomString(randomTitleWords),
		)
		location := fmt.Sprintf("Shelf %c%d",
			'A'+rune(gofakeit.Number(0, 5)),
			gofakeit.Number(1, 9),
		)
		_, err := tx.ExecContext(ctx,
			"INSERT INTO media (title, artist, location, format) VALUES (?, ?, ?, ?)",
			title, gofakeit.Name(), location, gofakeit.RandomString(types.Formats),
		)
		if err != nil {
			return 0, fmt.Errorf("seeding generated record %d: %w", i, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed transaction: %w", err)
	}

	return inserted, nil
}
