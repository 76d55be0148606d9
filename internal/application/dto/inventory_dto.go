package dto

import "time"

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name string `json:"nombre"`
}

// UpdateProductRequest renombrado de producto.
type UpdateProductRequest struct {
	Name string `json:"nombre"`
}

// ProductResponse producto expuesto por la API.
type ProductResponse struct {
	ID        string    `json:"producto_id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterMovementRequest body de POST /movements.
// ExpirationDate (YYYY-MM-DD) es obligatoria en entradas: crea el lote asociado.
type RegisterMovementRequest struct {
	ProductID      string `json:"producto_id"`
	Kind           string `json:"tipo"` // entrada | salida
	Quantity       int64  `json:"cantidad"`
	ExpirationDate string `json:"fecha_vencimiento,omitempty"`
}

// MovementResponse movimiento con el nombre del producto resuelto.
type MovementResponse struct {
	ID          string    `json:"movimiento_id"`
	ProductID   string    `json:"producto_id"`
	ProductName string    `json:"producto_nombre"`
	Kind        string    `json:"tipo"`
	Quantity    int64     `json:"cantidad"`
	Timestamp   time.Time `json:"fecha"`
	LotID       string    `json:"lote_id,omitempty"`
}

// LotResponse lote expuesto por la API.
type LotResponse struct {
	ID             string    `json:"lote_id"`
	ProductID      string    `json:"producto_id"`
	ProductName    string    `json:"producto_nombre"`
	Quantity       int64     `json:"cantidad"`
	ExpirationDate string    `json:"fecha_vencimiento"`
	CreatedAt      time.Time `json:"created_at"`
}
