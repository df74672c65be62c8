package services

import (
	"errors"

	"sales-report/chart"
	"sales-report/models"
	"sales-report/storage"
	"sales-report/utils"
)

// Aggregator seeds the sales store, summarizes revenue per product and
// renders the summary as a bar chart. Every store operation acquires its
// own handle through open and releases it before returning.
type Aggregator struct {
	open   storage.Opener
	logger *utils.Logger
}

// NewAggregator creates an Aggregator backed by stores from open.
func NewAggregator(open storage.Opener, logger *utils.Logger) *Aggregator {
	return &Aggregator{open: open, logger: logger}
}

// Seed replaces the stored sales with records. Either all records are stored
// or the store is left unchanged.
func (a *Aggregator) Seed(records []models.SaleRecord) (int, error) {
	if err := Validate(records); err != nil {
		return 0, err
	}

	store, err := a.open()
	if err != nil {
		return 0, &StoreAccessError{Op: "open", Err: err}
	}
	defer a.release(store)

	if err := store.Seed(records); err != nil {
		return 0, &StoreAccessError{Op: "seed", Err: err}
	}

	n, err := store.Count()
	if err != nil {
		return 0, &StoreAccessError{Op: "count", Err: err}
	}
	a.logger.Debug("[aggregator] Seeded %d records (store holds %d)", len(records), n)
	return n, nil
}

// Summarize returns total quantity and revenue per product, highest revenue
// first. It never writes to the store.
func (a *Aggregator) Summarize() (models.RevenueSummary, error) {
	store, err := a.open()
	if err != nil {
		return nil, &StoreAccessError{Op: "open", Err: err}
	}
	defer a.release(store)

	summary, err := store.Summarize()
	if err != nil {
		return nil, &StoreAccessError{Op: "summarize", Err: err}
	}
	a.logger.Debug("[aggregator] Summarized %d products", len(summary))
	return summary, nil
}

// Render writes summary as a bar chart to dest, replacing any existing file.
// An empty summary returns ErrNoData without touching dest.
func (a *Aggregator) Render(summary models.RevenueSummary, dest string) error {
	err := chart.RenderBar(summary, dest)
	switch {
	case err == nil:
		a.logger.Debug("[chart] Wrote %s (%d bars)", dest, len(summary))
		return nil
	case errors.Is(err, chart.ErrNoData):
		return ErrNoData
	default:
		return &RenderError{Path: dest, Err: err}
	}
}

func (a *Aggregator) release(store storage.SaleStore) {
	if err := store.Close(); err != nil {
		a.logger.Warn("[aggregator] Closing store: %v", err)
	}
}
