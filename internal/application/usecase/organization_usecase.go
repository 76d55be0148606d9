package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// OrganizationUseCase aplica reglas de negocio para la organización del usuario autenticado.
type OrganizationUseCase struct {
	repo repository.OrganizationRepository
}

// NewOrganizationUseCase construye el caso de uso con el puerto de persistencia.
func NewOrganizationUseCase(repo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo}
}

// Get obtiene la organización. Devuelve domain.ErrNotFound si no existe.
func (uc *OrganizationUseCase) Get(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase.GetOrganization: %w", err)
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return toOrganizationResponse(org), nil
}

// Rename cambia el nombre visible de la organización.
func (uc *OrganizationUseCase) Rename(ctx context.Context, id string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateName(ctx, id, name); err != nil {
		return nil, fmt.Errorf("usecase.RenameOrganization: %w", err)
	}
	return uc.Get(ctx, id)
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		PhotoURL:  o.PhotoURL,
		CreatedAt: o.CreatedAt,
	}
}
