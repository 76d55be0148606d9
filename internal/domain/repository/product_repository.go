package repository

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListByOrganization devuelve los productos en el orden del store (creación ascendente).
	ListByOrganization(ctx context.Context, organizationID string) ([]entity.Product, error)
	// UpdateName y Delete devuelven domain.ErrNotFound si no existe.
	UpdateName(ctx context.Context, id, name string) error
	// Delete devuelve domain.ErrInUse si el producto tiene lotes o movimientos.
	Delete(ctx context.Context, id string) error
}
