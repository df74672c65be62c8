package storage

import (
	"fmt"

	"sales-report/config"
	"sales-report/utils"
)

// OpenerFor returns an Opener for the backend named in cfg.StoreDriver.
func OpenerFor(cfg *config.Config, logger *utils.Logger) (Opener, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		path := cfg.SQLitePath
		return func() (SaleStore, error) {
			logger.Debug("[store] opening sqlite %s", path)
			return NewSQLiteStore(path)
		}, nil
	case config.DriverPostgres:
		dsn := cfg.DSN()
		retry := utils.NewRetryConfig(cfg.MaxRetries, cfg.RetryDelayMs, logger)
		return func() (SaleStore, error) {
			logger.Debug("[store] opening %s", cfg.StoreTarget())
			return NewPostgresStore(dsn, retry)
		}, nil
	default:
		return nil, fmt.Errorf("store: unsupported driver %q (want %q or %q)",
			cfg.StoreDriver, config.DriverSQLite, config.DriverPostgres)
	}
}
