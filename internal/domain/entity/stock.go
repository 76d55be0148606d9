package entity

// StockLevel fila de la vista stock_producto: stock actual por producto precalculado por el store.
type StockLevel struct {
	ProductID      string
	ProductName    string
	OrganizationID string
	CurrentStock   int64
	ActiveLots     int
}
