package types

import "errors"

// Store and lifecycle errors. Callers classify failures with errors.Is.
var (
	ErrNotFound    = errors.New("media not found")
	ErrStoreClosed = errors.New("store is closed")
	ErrStoreOpen   = errors.New("store is already open")
	ErrInvalidID   = errors.New("invalid media id")
)

// Config validation errors.
var (
	ErrListenAddrEmpty  = errors.New("listen address must not be empty")
	ErrDataDirEmpty     = errors.New("data directory must not be empty")
	ErrSeedCountInvalid = errors.New("seed count must not be negative")
)

// Config holds the settings for the mediarack service: where to listen, where
// the SQLite database lives, and how many random records to add when seeding
// an empty store.
type Config struct {
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	SeedCount  int    `json:"seed_count" yaml:"seed_count"`
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.SeedCount < 0 {
		return ErrSeedCountInvalid
	}
	return nil
}
