package entity

import "time"

// Lot representa un lote de un producto con su propia cantidad y fecha de vencimiento.
// Quantity se descuenta externamente a medida que se consume el stock.
type Lot struct {
	ID             string
	OrganizationID string
	ProductID      string
	Quantity       int64
	ExpirationDate time.Time // fecha de calendario (sin hora significativa)
	CreatedAt      time.Time
}
