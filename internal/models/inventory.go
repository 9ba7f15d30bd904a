package models

const LowStockThreshold = 30

const (
	StockInStock    = "in_stock"
	StockLow        = "low_stock"
	StockOutOfStock = "out_of_stock"
)

// StockStatus classe le stock d'un produit
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockOutOfStock
	case stock <= LowStockThreshold:
		return StockLow
	default:
		return StockInStock
	}
}
