package services

import (
	"math"
	"strings"

	"sales-report/models"
)

// Validate checks every record before it reaches the store. The first
// offending record is reported; records are never altered.
func Validate(records []models.SaleRecord) error {
	for i, r := range records {
		if reason := checkRecord(r); reason != "" {
			return &InvalidRecordError{Index: i, Reason: reason}
		}
	}
	return nil
}

func checkRecord(r models.SaleRecord) string {
	switch {
	case strings.TrimSpace(r.Product) == "":
		return "product is empty"
	case r.Quantity <= 0:
		return "quantity must be greater than zero"
	case math.IsNaN(r.Price) || math.IsInf(r.Price, 0):
		return "price is not a finite number"
	case r.Price < 0:
		return "price must not be negative"
	}
	return ""
}
