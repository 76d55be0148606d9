package entity

import "time"

// Product representa un producto refrigerado de la organización.
// El stock no vive aquí: se deriva de lotes y movimientos (vista stock_producto).
type Product struct {
	ID             string
	OrganizationID string
	Name           string
	CreatedAt      time.Time
}
