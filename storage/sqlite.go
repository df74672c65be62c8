package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// NewSQLiteStore opens (creating if needed) the SQLite file at path and
// ensures the sales table exists.
func NewSQLiteStore(path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("sqlite: create db dir: %w", err)
		}
	}
	return openSQLStore(sqliteDialect, path, func(db *sql.DB) error {
		// One connection keeps the file lock and transaction on the same handle.
		db.SetMaxOpenConns(1)
		return db.Ping()
	})
}
