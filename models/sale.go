package models

// SaleRecord is one recorded sale line item. Price is the unit price.
type SaleRecord struct {
	ID       int64
	Product  string
	Quantity int64
	Price    float64
}

// LineTotal returns quantity × unit price for this record.
func (s SaleRecord) LineTotal() float64 {
	return float64(s.Quantity) * s.Price
}

// ProductRevenue is one row of the per-product revenue summary.
type ProductRevenue struct {
	Product       string
	TotalQuantity int64
	Revenue       float64
}

// RevenueSummary holds one row per distinct product, ordered by revenue descending.
// It is always derived from the stored sales and never persisted on its own.
type RevenueSummary []ProductRevenue

// TotalRevenue sums revenue across every row.
func (s RevenueSummary) TotalRevenue() float64 {
	var total float64
	for _, r := range s {
		total += r.Revenue
	}
	return total
}

// TotalQuantity sums units sold across every row.
func (s RevenueSummary) TotalQuantity() int64 {
	var total int64
	for _, r := range s {
		total += r.TotalQuantity
	}
	return total
}

// IsSorted reports whether each row's revenue is >= the next row's.
func (s RevenueSummary) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1].Revenue < s[i].Revenue {
			return false
		}
	}
	return true
}

// Top returns the highest-revenue row, or nil for an empty summary.
func (s RevenueSummary) Top() *ProductRevenue {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}
