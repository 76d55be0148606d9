package repository

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	// ListByOrganization devuelve los lotes ordenados por fecha de vencimiento ascendente.
	ListByOrganization(ctx context.Context, organizationID string) ([]entity.Lot, error)
}
