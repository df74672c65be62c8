package services

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sales-report/models"
	"sales-report/storage"
	"sales-report/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(&bytes.Buffer{}) }

// countingOpener opens the same SQLite file each time and tracks open handles.
type countingOpener struct {
	path   string
	opened int
	closed int
}

type trackedStore struct {
	storage.SaleStore
	o *countingOpener
}

func (s *trackedStore) Close() error {
	s.o.closed++
	return s.SaleStore.Close()
}

func (o *countingOpener) open() (storage.SaleStore, error) {
	s, err := storage.NewSQLiteStore(o.path)
	if err != nil {
		return nil, err
	}
	o.opened++
	return &trackedStore{SaleStore: s, o: o}, nil
}

func newTestAggregator(t *testing.T) (*Aggregator, *countingOpener) {
	t.Helper()
	o := &countingOpener{path: filepath.Join(t.TempDir(), "sales_data.db")}
	return NewAggregator(o.open, newTestLogger()), o
}

func TestAggregatorSeedAndSummarize(t *testing.T) {
	agg, o := newTestAggregator(t)

	n, err := agg.Seed(models.SeedSales())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 7 {
		t.Errorf("Seed count: got %d, want 7", n)
	}

	summary, err := agg.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	want := []struct {
		product string
		qty     int64
		revenue float64
	}{
		{"Laptop", 15, 17750.00},
		{"Monitor", 20, 6015.00},
		{"Keyboard", 30, 2250.00},
		{"Mouse", 75, 1875.00},
		{"Webcam", 15, 825.00},
	}
	if len(summary) != len(want) {
		t.Fatalf("summary len: got %d, want %d", len(summary), len(want))
	}
	for i, w := range want {
		got := summary[i]
		if got.Product != w.product || got.TotalQuantity != w.qty || got.Revenue != w.revenue {
			t.Errorf("row %d: got %+v, want %s/%d/%.2f", i, got, w.product, w.qty, w.revenue)
		}
	}

	if o.opened != 2 || o.closed != 2 {
		t.Errorf("handles: opened %d closed %d, want 2/2", o.opened, o.closed)
	}
}

func TestAggregatorReseedDoesNotDuplicate(t *testing.T) {
	agg, _ := newTestAggregator(t)

	first, err := agg.Seed(models.SeedSales())
	if err != nil {
		t.Fatalf("Seed #1: %v", err)
	}
	second, err := agg.Seed(models.SeedSales())
	if err != nil {
		t.Fatalf("Seed #2: %v", err)
	}
	if first != second {
		t.Errorf("row count changed on reseed: %d -> %d", first, second)
	}

	summary, _ := agg.Summarize()
	if summary.TotalQuantity() != 155 {
		t.Errorf("TotalQuantity after reseed: got %d, want 155", summary.TotalQuantity())
	}
}

func TestAggregatorRevenueMatchesLineTotals(t *testing.T) {
	agg, _ := newTestAggregator(t)
	records := []models.SaleRecord{
		{Product: "Cable", Quantity: 3, Price: 0.1},
		{Product: "Cable", Quantity: 7, Price: 0.2},
		{Product: "Dock", Quantity: 1, Price: 89.99},
		{Product: "Stand", Quantity: 2, Price: 0},
	}
	if _, err := agg.Seed(records); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	summary, err := agg.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	var want float64
	for _, r := range records {
		want += r.LineTotal()
	}
	if diff := summary.TotalRevenue() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalRevenue: got %.6f, want %.6f", summary.TotalRevenue(), want)
	}
	if !summary.IsSorted() {
		t.Errorf("summary not ordered: %+v", summary)
	}
	if len(summary) != 3 {
		t.Errorf("products: got %d, want 3", len(summary))
	}
}

func TestAggregatorEmptyStore(t *testing.T) {
	agg, _ := newTestAggregator(t)
	if _, err := agg.Seed(nil); err != nil {
		t.Fatalf("Seed(nil): %v", err)
	}

	summary, err := agg.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(summary) != 0 {
		t.Errorf("empty store: got %d rows", len(summary))
	}

	dest := filepath.Join(t.TempDir(), "chart.png")
	if err := agg.Render(summary, dest); !errors.Is(err, ErrNoData) {
		t.Errorf("Render(empty): got %v, want ErrNoData", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("Render(empty) must not create a file")
	}
}

func TestAggregatorInvalidRecordLeavesStore(t *testing.T) {
	agg, o := newTestAggregator(t)
	if _, err := agg.Seed(models.SeedSales()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	openedBefore := o.opened

	bad := append(models.SeedSales(), models.SaleRecord{Product: "Webcam", Quantity: 0, Price: 55})
	_, err := agg.Seed(bad)

	var invalid *InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Fatalf("Seed(bad): got %v, want *InvalidRecordError", err)
	}
	if invalid.Index != 7 {
		t.Errorf("Index: got %d, want 7", invalid.Index)
	}
	if o.opened != openedBefore {
		t.Error("invalid input should be rejected before opening the store")
	}

	summary, _ := agg.Summarize()
	if len(summary) != 5 {
		t.Errorf("store changed after rejected seed: %d products", len(summary))
	}
}

func TestAggregatorStoreAccessError(t *testing.T) {
	cause := errors.New("disk I/O error")
	agg := NewAggregator(func() (storage.SaleStore, error) { return nil, cause }, newTestLogger())

	_, err := agg.Seed(models.SeedSales())
	var storeErr *StoreAccessError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Seed: got %v, want *StoreAccessError", err)
	}
	if storeErr.Op != "open" || !errors.Is(err, cause) {
		t.Errorf("StoreAccessError: got op %q err %v", storeErr.Op, storeErr.Err)
	}

	if _, err := agg.Summarize(); !errors.As(err, &storeErr) {
		t.Errorf("Summarize: got %v, want *StoreAccessError", err)
	}
}

func TestAggregatorRender(t *testing.T) {
	agg, _ := newTestAggregator(t)
	if _, err := agg.Seed(models.SeedSales()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	summary, _ := agg.Summarize()

	dest := filepath.Join(t.TempDir(), "sales_revenue_chart.png")
	for i := 0; i < 2; i++ {
		if err := agg.Render(summary, dest); err != nil {
			t.Fatalf("Render #%d: %v", i+1, err)
		}
	}
	info, err := os.Stat(dest)
	if err != nil || info.Size() == 0 {
		t.Errorf("chart not written: %v", err)
	}

	badDest := filepath.Join(t.TempDir(), "no", "such", "chart.png")
	var renderErr *RenderError
	if err := agg.Render(summary, badDest); !errors.As(err, &renderErr) {
		t.Errorf("Render(bad path): got %v, want *RenderError", err)
	} else if renderErr.Path != badDest {
		t.Errorf("RenderError.Path: got %q, want %q", renderErr.Path, badDest)
	}
}
