package repository

import (
	"context"
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// MovementFilter criterios de consulta de movimientos. OrganizationID es obligatorio.
type MovementFilter struct {
	OrganizationID string
	ProductID      string     // opcional
	From           *time.Time // inclusivo
	To             *time.Time // exclusivo
	NewestFirst    bool
	Limit          int // 0 = sin límite
}

// MovementRepository define el puerto de persistencia para movimientos (append-only).
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	List(ctx context.Context, f MovementFilter) ([]entity.Movement, error)
}
