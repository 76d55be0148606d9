package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/auth"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// OperatorUseCase gestión de operarios por parte del administrador.
// El control de rol lo hace RequireRole en la capa HTTP.
type OperatorUseCase struct {
	repo  repository.ProfileRepository
	cache CacheInvalidator
	log   zerolog.Logger
}

// CacheInvalidator descarta las vistas cacheadas del dashboard de una organización.
// El resumen del dashboard cuenta operarios.
type CacheInvalidator interface {
	InvalidateOrganization(ctx context.Context, organizationID string) error
}

// NewOperatorUseCase construye el caso de uso. cache puede ser nil.
func NewOperatorUseCase(repo repository.ProfileRepository, cache CacheInvalidator, log zerolog.Logger) *OperatorUseCase {
	return &OperatorUseCase{repo: repo, cache: cache, log: log}
}

// List operarios de la organización.
func (uc *OperatorUseCase) List(ctx context.Context, organizationID string) ([]dto.ProfileResponse, error) {
	list, err := uc.repo.ListByOrganization(ctx, organizationID, entity.RoleOperator)
	if err != nil {
		return nil, fmt.Errorf("usecase.ListOperators: %w", err)
	}
	out := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, auth.ToProfileResponse(p))
	}
	return out, nil
}

// Create da de alta un operario. Devuelve domain.ErrEmailAlreadyExists si el correo ya está en uso.
func (uc *OperatorUseCase) Create(ctx context.Context, organizationID string, in dto.CreateOperatorRequest) (*dto.ProfileResponse, error) {
	email, err := auth.NormalizeEmail(in.Email)
	if err != nil || strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase.CreateOperator: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	p := &entity.Profile{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          email,
		PasswordHash:   hash,
		Role:           entity.RoleOperator,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("usecase.CreateOperator: %w", err)
	}
	uc.invalidate(ctx, organizationID)
	out := auth.ToProfileResponse(p)
	return &out, nil
}

// Update cambia nombre, apellido y correo de un operario de la organización.
func (uc *OperatorUseCase) Update(ctx context.Context, organizationID, id string, in dto.UpdateOperatorRequest) (*dto.ProfileResponse, error) {
	email, err := auth.NormalizeEmail(in.Email)
	if err != nil || strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.ownedOperator(ctx, organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("usecase.UpdateOperator: %w", err)
	}
	if email != p.Email {
		existing, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("usecase.UpdateOperator: %w", err)
		}
		if existing != nil && existing.ID != p.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.Email = email
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("usecase.UpdateOperator: %w", err)
	}
	uc.invalidate(ctx, organizationID)
	out := auth.ToProfileResponse(p)
	return &out, nil
}

// Delete da de baja un operario de la organización. Los administradores no se borran por aquí.
func (uc *OperatorUseCase) Delete(ctx context.Context, organizationID, id string) error {
	p, err := uc.ownedOperator(ctx, organizationID, id)
	if err != nil {
		return fmt.Errorf("usecase.DeleteOperator: %w", err)
	}
	if err := uc.repo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("usecase.DeleteOperator: %w", err)
	}
	uc.invalidate(ctx, organizationID)
	return nil
}

func (uc *OperatorUseCase) ownedOperator(ctx context.Context, organizationID, id string) (*entity.Profile, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OrganizationID != organizationID || p.Role != entity.RoleOperator {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *OperatorUseCase) invalidate(ctx context.Context, organizationID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateOrganization(ctx, organizationID); err != nil {
		uc.log.Warn().Err(err).Str("organization_id", organizationID).Msg("no se pudo invalidar la caché del dashboard")
	}
}
