package repository

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	UpdateName(ctx context.Context, id, name string) error
	List(ctx context.Context) ([]*entity.Organization, error)
}
