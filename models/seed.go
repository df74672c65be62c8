package models

// SeedSales returns the fixed line items the report is built from.
// A fresh slice is returned on every call.
func SeedSales() []SaleRecord {
	return []SaleRecord{
		{Product: "Laptop", Quantity: 10, Price: 1200.00},
		{Product: "Mouse", Quantity: 50, Price: 25.50},
		{Product: "Keyboard", Quantity: 30, Price: 75.00},
		{Product: "Monitor", Quantity: 20, Price: 300.75},
		{Product: "Laptop", Quantity: 5, Price: 1150.00},
		{Product: "Mouse", Quantity: 25, Price: 24.00},
		{Product: "Webcam", Quantity: 15, Price: 55.00},
	}
}
