// Package sqlite implements the SQLite storage backend for mediarack.
package sqlite

// Schema DDL for the media table. The id column is assigned by SQLite and is
// immutable once handed out; AUTOINCREMENT keeps ids unique across the store's
// lifetime even after deletes.
const createMedia = `CREATE TABLE IF NOT EXISTS media (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    artist TEXT NOT NULL,
    location TEXT NOT NULL,
    format TEXT NOT NULL
);`

// schemaDDL lists all schema statements executed on Open.
var schemaDDL = []string{
	createMedia,
}
