/*
Package store keeps named bitmaps in a SQLite database.

Bitmaps are stored as BMP files and deduplicated by the SHA1 of their
encoding, so several names may share the same image data.
*/
package store

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF for ImportFile
	_ "image/jpeg" // register JPEG for ImportFile
	_ "image/png"  // register PNG for ImportFile
	"io"
	"os"

	"github.com/bodgit/bitmap"
	_ "github.com/mattn/go-sqlite3" // database/sql driver
	_ "golang.org/x/image/bmp"      // register BMP for ImportFile
	_ "golang.org/x/image/tiff"     // register TIFF for ImportFile
	_ "golang.org/x/image/webp"     // register WebP for ImportFile
)

// ErrNotFound is returned by Load when no bitmap has the requested name.
var ErrNotFound = errors.New("store: bitmap not found")

// Entry describes a stored bitmap.
type Entry struct {
	Name          string
	Width, Height int
	SHA1          string
}

// Store is a database of named bitmaps.
type Store struct {
	db *sql.DB
}

// Open opens the database in file, creating it if necessary.
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS bitmap (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, image_id INTEGER NOT NULL, FOREIGN KEY(image_id) REFERENCES image(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db: db,
	}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores c under name, replacing any bitmap already using that name.
func (s *Store) Put(name string, c *bitmap.Canvas) error {
	b := new(bytes.Buffer)
	h := sha1.New()
	if err := c.Encode(io.MultiWriter(b, h)); err != nil {
		return err
	}

	id, err := s.addImage(fmt.Sprintf("%X", h.Sum(nil)), c.Width(), c.Height(), b.Bytes())
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("INSERT INTO bitmap (name, image_id) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET image_id = excluded.image_id", name, id); err != nil {
		return err
	}

	return s.prune()
}

// ImportFile decodes any supported image file and stores it under name.
func (s *Store) ImportFile(name, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	c, err := bitmap.NewFromImage(m)
	if err != nil {
		return err
	}

	return s.Put(name, c)
}

func (s *Store) addImage(sha string, width, height int, data []byte) (int64, error) {
	var id int64
	switch err := s.db.QueryRow("SELECT id FROM image WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := s.db.Exec("INSERT INTO image (sha1, width, height, data) VALUES (?, ?, ?, ?)", sha, width, height, data)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// prune removes image data no longer referenced by any name.
func (s *Store) prune() error {
	_, err := s.db.Exec("DELETE FROM image WHERE id NOT IN (SELECT image_id FROM bitmap)")
	return err
}

// Get returns the bitmap stored under name, or nil if there is none.
func (s *Store) Get(name string) (*bitmap.Canvas, error) {
	var data []byte
	switch err := s.db.QueryRow("SELECT i.data FROM bitmap AS b JOIN image AS i ON b.image_id = i.id WHERE b.name = ?", name).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return bitmap.Decode(bytes.NewReader(data))
	default:
		return nil, err
	}
}

// Load is like Get but returns ErrNotFound for unknown names, which makes a
// Store usable as a resource.Loader.
func (s *Store) Load(name string) (*bitmap.Canvas, error) {
	c, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c, nil
}

// Delete removes name. Deleting an unknown name is not an error.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec("DELETE FROM bitmap WHERE name = ?", name); err != nil {
		return err
	}
	return s.prune()
}

// List returns every stored bitmap ordered by name.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query("SELECT b.name, i.width, i.height, i.sha1 FROM bitmap AS b JOIN image AS i ON b.image_id = i.id ORDER BY b.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Width, &e.Height, &e.SHA1); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
