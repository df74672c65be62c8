package storage

import (
	"database/sql"

	"sales-report/utils"
)

// NewPostgresStore connects to PostgreSQL, retrying the initial ping with
// back-off while the server comes up, and ensures the sales table exists.
func NewPostgresStore(dsn string, retry *utils.RetryConfig) (*SQLStore, error) {
	return openSQLStore(postgresDialect, dsn, func(db *sql.DB) error {
		return retry.Do("postgres ping", db.Ping)
	})
}
