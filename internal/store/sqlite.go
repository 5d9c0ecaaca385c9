package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/jcorbin/wordforth/forth"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens, creating if needed, a SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS stack (
			pos INTEGER PRIMARY KEY,
			value INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	var version string
	err = db.QueryRow("SELECT value FROM metadata WHERE key = 'schema_version'").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := db.Exec("INSERT INTO metadata (key, value) VALUES ('schema_version', ?)", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case err != nil:
		db.Close()
		return nil, err
	case version != SchemaVersion:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Load reads the saved words, in name order, and the saved stack.
func (s *SQLite) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess Session

	rows, err := s.db.Query("SELECT name, body FROM words ORDER BY name")
	if err != nil {
		return Session{}, err
	}
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			rows.Close()
			return Session{}, err
		}
		sess.Words = append(sess.Words, forth.Word{Name: name, Body: strings.Fields(body)})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Session{}, err
	}

	rows, err = s.db.Query("SELECT value FROM stack ORDER BY pos")
	if err != nil {
		return Session{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var val int64
		if err := rows.Scan(&val); err != nil {
			return Session{}, err
		}
		sess.Stack = append(sess.Stack, int32(val))
	}
	return sess, rows.Err()
}

// Save replaces the saved session in a single transaction.
func (s *SQLite) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		return err
	}
	for _, w := range sess.Words {
		if _, err := tx.Exec("INSERT INTO words (name, body) VALUES (?, ?)", w.Name, strings.Join(w.Body, " ")); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM stack"); err != nil {
		return err
	}
	for pos, val := range sess.Stack {
		if _, err := tx.Exec("INSERT INTO stack (pos, value) VALUES (?, ?)", pos, int64(val)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the database.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
