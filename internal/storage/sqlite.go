package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the key/value pairs in a single local SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

func NewSQLiteStore(path string, log *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db, log: log}

	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)

	return err
}

func (s *SQLiteStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("failed to serialize value", "key", key, "error", err)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.log.Error("failed to store value", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Get(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.log.Error("failed to read value", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Error("failed to parse stored value", "key", key, "error", err)
		return false
	}

	return true
}

func (s *SQLiteStore) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Error("failed to remove key", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Clear() {
	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		s.log.Error("failed to clear store", "error", err)
	}
}

func (s *SQLiteStore) KeysWithPrefix(prefix string) []string {
	rows, err := s.db.Query(`SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix)
	if err != nil {
		s.log.Error("failed to list keys", "prefix", prefix, "error", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			s.log.Error("failed to scan key", "error", err)
			return keys
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		s.log.Error("failed to iterate keys", "prefix", prefix, "error", err)
	}

	return keys
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
