package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

// dbFileName is the SQLite database file created inside Config.DataDir.
const dbFileName = "media.db"

// Store provides durable CRUD and substring search over MediaItem records.
// SQLite's own single-writer locking is the only write coordination; the
// mutex here guards the open/closed lifecycle, not row access.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
}

// NewStore creates a new Store. The store is not open; call Open with a
// Config to initialize it.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store with the given configuration. It creates
// DataDir if it does not exist, opens the database file, and ensures the
// media table is present. Returns ErrStoreOpen if already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrStoreOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.open = true

	return nil
}

// Close releases the database connection. After Close, all operations return
// ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}

	s.open = false
	return nil
}

// List returns all media records in insertion order. It returns an empty
// slice, not nil, when the store holds no records.
func (s *Store) List(ctx context.Context) ([]types.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, artist, location, format FROM media ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// Create validates the item and inserts it, returning a copy with the
// store-assigned id. Invalid input leaves the store unchanged.
func (s *Store) Create(ctx context.Context, item types.MediaItem) (types.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return types.MediaItem{}, types.ErrStoreClosed
	}

	if err := item.Validate(); err != nil {
		return types.MediaItem{}, err
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO media (title, artist, location, format) VALUES (?, ?, ?, ?)",
		item.Title, item.Artist, item.Location, item.Format,
	)
	if err != nil {
		return types.MediaItem{}, fmt.Errorf("inserting media: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return types.MediaItem{}, fmt.Errorf("reading inserted id: %w", err)
	}

	item.ID = id
	return item, nil
}

// Delete removes the record with the given id. Returns ErrNotFound if no
// record has that id, so a second delete of the same id reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM media WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting media %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete count: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Search returns all records where query is a case-insensitive substring of
// title, artist, location, or format. A query that matches nothing yields an
// empty slice. The caller decides the empty-query policy; given an empty
// query this matches every record.
func (s *Store) Search(ctx context.Context, query string) ([]types.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	like := "%" + escapeLike(query) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, artist, location, format FROM media
		 WHERE title LIKE ? ESCAPE '\' OR artist LIKE ? ESCAPE '\'
		    OR location LIKE ? ESCAPE '\' OR format LIKE ? ESCAPE '\'
		 ORDER BY id ASC`,
		like, like, like, like,
	)
	if err != nil {
		return nil, fmt.Errorf("searching media: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// Count returns the number of media records. The seeding step uses it to
// decide whether the store is empty.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return 0, types.ErrStoreClosed
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM media").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting media: %w", err)
	}
	return count, nil
}

// escapeLike escapes LIKE metacharacters so they match literally.
func escapeLike(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q)
}

// collectItems scans all rows into MediaItem values.
func collectItems(rows *sql.Rows) ([]types.MediaItem, error) {
	items := []types.MediaItem{}
	for rows.Next() {
		var m types.MediaItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Artist, &m.Location, &m.Format); err != nil {
			return nil, fmt.Errorf("scanning media row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating media rows: %w", err)
	}
	return items, nil
}
