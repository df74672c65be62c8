package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"sales-report/models"
)

// SQLStore persists sale records in a relational database through database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

func openSQLStore(d dialect, dsn string, ping func(*sql.DB) error) (*SQLStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", d.name, err)
	}

	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping: %w", d.name, err)
	}

	s := &SQLStore{db: db, dialect: d}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", d.name, err)
	}
	return s, nil
}

func (s *SQLStore) migrate() error {
	_, err := s.db.Exec(s.dialect.createTable())
	return err
}

// Seed clears the sales table and inserts every record in order inside one
// transaction. On any failure the transaction is rolled back and the
// previous contents remain.
func (s *SQLStore) Seed(records []models.SaleRecord) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin seed: %w", s.dialect.name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(clearSalesQuery); err != nil {
		return fmt.Errorf("%s: clear: %w", s.dialect.name, err)
	}

	stmt, err := tx.Prepare(s.dialect.insertSale())
	if err != nil {
		return fmt.Errorf("%s: prepare insert: %w", s.dialect.name, err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err = stmt.Exec(r.Product, r.Quantity, r.Price); err != nil {
			return fmt.Errorf("%s: insert record %d (%s): %w", s.dialect.name, i, r.Product, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit seed: %w", s.dialect.name, err)
	}
	return nil
}

// Summarize computes total quantity and revenue per product, highest revenue first.
// An empty table yields an empty, non-nil summary.
func (s *SQLStore) Summarize() (models.RevenueSummary, error) {
	rows, err := s.db.Query(revenueSummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: summarize: %w", s.dialect.name, err)
	}
	defer rows.Close()

	summary := models.RevenueSummary{}
	for rows.Next() {
		var r models.ProductRevenue
		if err := rows.Scan(&r.Product, &r.TotalQuantity, &r.Revenue); err != nil {
			return nil, fmt.Errorf("%s: scan summary row: %w", s.dialect.name, err)
		}
		summary = append(summary, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: summarize: %w", s.dialect.name, err)
	}
	return summary, nil
}

// Count returns the number of stored sale records.
func (s *SQLStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(countSalesQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: count: %w", s.dialect.name, err)
	}
	return n, nil
}

// FetchAll retrieves all stored sales in insertion order.
func (s *SQLStore) FetchAll() ([]models.SaleRecord, error) {
	rows, err := s.db.Query(fetchSalesQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch all: %w", s.dialect.name, err)
	}
	defer rows.Close()

	var records []models.SaleRecord
	for rows.Next() {
		var r models.SaleRecord
		if err := rows.Scan(&r.ID, &r.Product, &r.Quantity, &r.Price); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", s.dialect.name, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
