package storage

import (
	"fmt"
	"strings"
)

// dialect carries the SQL differences between the supported backends.
type dialect struct {
	name       string
	driver     string
	idColumn   string
	priceType  string
	dollarArgs bool
}

var (
	sqliteDialect = dialect{
		name:      "sqlite",
		driver:    "sqlite",
		idColumn:  "id INTEGER PRIMARY KEY",
		priceType: "REAL",
	}
	postgresDialect = dialect{
		name:       "postgres",
		driver:     "postgres",
		idColumn:   "id SERIAL PRIMARY KEY",
		priceType:  "DOUBLE PRECISION",
		dollarArgs: true,
	}
)

func (d dialect) createTable() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS sales (
			%s,
			product  TEXT    NOT NULL,
			quantity INTEGER NOT NULL,
			price    %s NOT NULL
		)`, d.idColumn, d.priceType)
}

// placeholders returns n bind markers in the dialect's style.
func (d dialect) placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		if d.dollarArgs {
			marks[i] = fmt.Sprintf("$%d", i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}

func (d dialect) insertSale() string {
	return "INSERT INTO sales (product, quantity, price) VALUES (" + d.placeholders(3) + ")"
}

const (
	clearSalesQuery = `DELETE FROM sales`

	countSalesQuery = `SELECT COUNT(*) FROM sales`

	fetchSalesQuery = `
		SELECT id, product, quantity, price
		FROM sales
		ORDER BY id`

	// Ties on revenue fall back to product name so output is deterministic.
	revenueSummaryQuery = `
		SELECT
			product,
			SUM(quantity)         AS total_quantity,
			SUM(quantity * price) AS revenue
		FROM sales
		GROUP BY product
		ORDER BY revenue DESC, product ASC`
)
