package main

import (
	"errors"
	"fmt"
	"os"

	"sales-report/config"
	"sales-report/models"
	"sales-report/services"
	"sales-report/storage"
	"sales-report/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("Unknown LOG_LEVEL %q, staying at info", cfg.LogLevel)
	}

	logger.Info("=== Sales Revenue Report starting ===")
	logger.Info("Config: store %s (%s) | chart: %s", cfg.StoreDriver, cfg.StoreTarget(), cfg.ChartPath)

	open, err := storage.OpenerFor(cfg, logger)
	if err != nil {
		logger.Error("Store configuration: %v", err)
		os.Exit(1)
	}
	agg := services.NewAggregator(open, logger)

	n, err := agg.Seed(models.SeedSales())
	if err != nil {
		logger.Error("Database error: %v", err)
		os.Exit(1)
	}
	logger.Info("Database '%s' created and populated successfully (%d records).", cfg.StoreTarget(), n)

	summary, err := agg.Summarize()
	if err != nil {
		logger.Error("Database error: %v", err)
		os.Exit(1)
	}

	services.NewReport(os.Stdout, true).Print(summary)

	if err := exportCSV(cfg.CSVOutputPath, summary); err != nil {
		logger.Warn("CSV export failed: %v", err)
	} else {
		logger.Info("Revenue summary exported to %s", cfg.CSVOutputPath)
	}

	err = agg.Render(summary, cfg.ChartPath)
	switch {
	case err == nil:
		fmt.Printf("Bar chart saved as '%s'\n", cfg.ChartPath)
	case errors.Is(err, services.ErrNoData):
		fmt.Println("Could not generate chart because no data was loaded.")
	default:
		logger.Error("Chart error: %v", err)
		os.Exit(1)
	}
}

func exportCSV(path string, summary models.RevenueSummary) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	if err := w.WriteSummary(summary); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
