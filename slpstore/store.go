// Package slpstore persists computed detector output to a local SQLite
// database, compressing each row's payload with zstd the way
// ernie-trinity-tools decompresses its zstd-framed demo data.
package slpstore

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection holding one row per detector record.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS detector_rows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fingerprint TEXT NOT NULL,
	port INTEGER NOT NULL,
	kind TEXT NOT NULL,
	frame_index INTEGER NOT NULL,
	payload BLOB NOT NULL
);
`

// Open creates or opens a SQLite database at path and ensures its schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite store %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Row is one flattened detector record ready for storage: the replay
// fingerprint it came from, the port that produced it, a kind tag (e.g.
// "wavedash", "take_hit") and the frame it occurred on. The detector's own
// record value is not a field of Row; it is passed to PutRow alongside it.
type Row struct {
	Fingerprint string
	Port        int
	Kind        string
	FrameIndex  int
}

// PutRow JSON-encodes value, compresses it with zstd, and inserts one row.
func (s *Store) PutRow(row Row, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal detector record")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return errors.Wrap(err, "create zstd encoder")
	}
	defer enc.Close()
	compressed := enc.EncodeAll(raw, nil)

	_, err = s.db.Exec(
		`INSERT INTO detector_rows (fingerprint, port, kind, frame_index, payload) VALUES (?, ?, ?, ?, ?)`,
		row.Fingerprint, row.Port, row.Kind, row.FrameIndex, compressed,
	)
	return errors.Wrap(err, "insert detector row")
}

// GetRow decompresses and JSON-decodes the payload at id into dst.
func (s *Store) GetRow(id int64, dst interface{}) error {
	var compressed []byte
	err := s.db.QueryRow(`SELECT payload FROM detector_rows WHERE id = ?`, id).Scan(&compressed)
	if err != nil {
		return errors.Wrapf(err, "select detector row %d", id)
	}

	dec, err := zstd.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return errors.Wrap(err, "create zstd decoder")
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return errors.Wrap(err, "decompress payload")
	}
	return errors.Wrap(json.Unmarshal(raw, dst), "unmarshal detector record")
}
