package skinvault

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"skinvault/savefile"
)

// ErrSkinNotFound means the library holds no skin under the given name
var ErrSkinNotFound = errors.New("skinvault: skin not found")

// Library is a catalog of named palettes stored in SQLite, so skins
// can be stashed and reapplied without keeping loose skin files
// around.
type Library struct {
	db *sql.DB
}

// OpenLibrary opens the catalog at file, creating it if necessary.
func OpenLibrary(file string) (*Library, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS skin (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, palette BLOB NOT NULL, created INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &Library{
		db: db,
	}, nil
}

// Close releases the underlying database
func (l *Library) Close() error {
	return l.db.Close()
}

// Stash stores a palette under name, replacing any previous skin with
// the same name.
func (l *Library) Stash(name string, p savefile.Palette) error {
	if len(p) != savefile.PaletteSize {
		return fmt.Errorf("%w: %d values, expected %d", savefile.ErrMalformedPalette, len(p), savefile.PaletteSize)
	}

	_, err := l.db.Exec("INSERT OR REPLACE INTO skin (name, palette, created) VALUES (?, ?, ?)", name, []byte(p), time.Now().UnixMilli())
	return err
}

// Fetch returns the palette stashed under name.
func (l *Library) Fetch(name string) (savefile.Palette, error) {
	var b []byte
	switch err := l.db.QueryRow("SELECT palette FROM skin WHERE name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, fmt.Errorf("%w: %q", ErrSkinNotFound, name)
	case nil:
		if len(b) != savefile.PaletteSize {
			return nil, fmt.Errorf("%w: stored skin %q is %d bytes", savefile.ErrMalformedPalette, name, len(b))
		}
		return savefile.Palette(b), nil
	default:
		return nil, err
	}
}

// LibraryEntry is one row of the catalog listing.
type LibraryEntry struct {
	Name    string
	Palette savefile.Palette
	Created time.Time
}

// List returns every stashed skin in name order.
func (l *Library) List() ([]LibraryEntry, error) {
	rows, err := l.db.Query("SELECT name, palette, created FROM skin ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LibraryEntry
	for rows.Next() {
		var (
			e  LibraryEntry
			b  []byte
			ms int64
		)
		if err := rows.Scan(&e.Name, &b, &ms); err != nil {
			return nil, err
		}
		e.Palette = savefile.Palette(b)
		e.Created = time.UnixMilli(ms)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Remove deletes the skin stashed under name.
func (l *Library) Remove(name string) error {
	result, err := l.db.Exec("DELETE FROM skin WHERE name = ?", name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrSkinNotFound, name)
	}

	return nil
}
