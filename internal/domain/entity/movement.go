package entity

import "time"

// Tipos de movimiento tal como se guardan en movimiento.tipo.
const (
	MovementKindInflow  = "entrada"
	MovementKindOutflow = "salida"
)

// Movement representa un evento de inventario (entrada o salida). Inmutable una vez creado.
type Movement struct {
	ID             string
	OrganizationID string
	ProductID      string
	Kind           string // entrada, salida
	Quantity       int64  // siempre positivo; el signo lo da Kind
	Timestamp      time.Time
}

// SignedQuantity devuelve +Quantity para entradas y -Quantity para salidas.
func (m Movement) SignedQuantity() int64 {
	if m.Kind == MovementKindOutflow {
		return -m.Quantity
	}
	return m.Quantity
}

// IsValidMovementKind informa si el tipo es entrada o salida.
func IsValidMovementKind(kind string) bool {
	return kind == MovementKindInflow || kind == MovementKindOutflow
}
