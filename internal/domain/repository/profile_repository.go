package repository

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para perfiles (admin u operario).
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	// GetByID y GetByEmail devuelven nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	// ListByOrganization filtra por rol; role vacío devuelve todos.
	ListByOrganization(ctx context.Context, organizationID, role string) ([]*entity.Profile, error)
	CountByRole(ctx context.Context, organizationID, role string) (int, error)
	// Update cambia nombre, apellido y correo. domain.ErrNotFound si no existe.
	Update(ctx context.Context, p *entity.Profile) error
	Delete(ctx context.Context, id string) error
}
