package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"sales-report/models"
)

// Report prints a revenue summary for the console.
type Report struct {
	out   io.Writer
	color bool
}

// NewReport creates a Report writing to out. ANSI colors are used when color is true.
func NewReport(out io.Writer, color bool) *Report {
	return &Report{out: out, color: color}
}

func (r *Report) paint(code, s string) string {
	if !r.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Print writes the summary as a table followed by totals.
func (r *Report) Print(s models.RevenueSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(r.out, "\n%s\n", r.paint("1;35", sep))
	fmt.Fprintf(r.out, "%s\n", r.paint("1;35", "  SALES DATA"))
	fmt.Fprintf(r.out, "%s\n\n", r.paint("1;35", sep))

	if len(s) == 0 {
		fmt.Fprintf(r.out, "  No sales data available\n")
		fmt.Fprintf(r.out, "\n%s\n\n", r.paint("1;35", sep))
		return
	}

	fmt.Fprintf(r.out, "  %-4s %-20s %14s %14s\n", "#", "product", "total_quantity", "revenue")
	fmt.Fprintf(r.out, "  %s\n", thin)
	for i, row := range s {
		fmt.Fprintf(r.out, "  %-4d %-20s %14d %14s\n",
			i, truncate(row.Product, 20), row.TotalQuantity, money(row.Revenue))
	}
	fmt.Fprintf(r.out, "  %s\n", thin)
	fmt.Fprintf(r.out, "  %-25s %14d %14s\n", "Total", s.TotalQuantity(), money(s.TotalRevenue()))

	if top := s.Top(); top != nil {
		fmt.Fprintf(r.out, "\n  Top product : %s (%s)\n",
			r.paint("1", top.Product), r.paint("1;32", "$"+money(top.Revenue)))
	}

	fmt.Fprintf(r.out, "\n%s\n\n", r.paint("1;35", sep))
}

// money formats an amount with two decimals. Only output is rounded.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
