package storage

import "sales-report/models"

// SaleStore is the interface any sales backend must satisfy.
type SaleStore interface {
	// Seed replaces the stored sales with records, atomically.
	Seed(records []models.SaleRecord) error
	// Summarize groups stored sales by product, highest revenue first.
	Summarize() (models.RevenueSummary, error)
	Count() (int, error)
	FetchAll() ([]models.SaleRecord, error)
	Close() error
}

// Opener acquires a fresh store handle. Callers own the handle and must Close it.
type Opener func() (SaleStore, error)
