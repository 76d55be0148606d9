package repository

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// StockRepository lectura de la vista stock_producto (stock actual precalculado por el store).
type StockRepository interface {
	ListByOrganization(ctx context.Context, organizationID string) ([]entity.StockLevel, error)
}
