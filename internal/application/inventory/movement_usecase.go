package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	agg "github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// DefaultRecentLimit movimientos listados en la vista de movimientos recientes.
const DefaultRecentLimit = 50

const dateLayout = "2006-01-02"

// MovementUseCase registra y lista movimientos de inventario.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	cache        CacheInvalidator
	log          zerolog.Logger
	recentLimit  int
	locale       string
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso. cache puede ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	cache CacheInvalidator,
	log zerolog.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		cache:        cache,
		log:          log,
		recentLimit:  DefaultRecentLimit,
		locale:       "es",
		now:          time.Now,
	}
}

// WithRecentLimit cambia el tope de movimientos recientes; n <= 0 conserva el actual.
func (uc *MovementUseCase) WithRecentLimit(n int) *MovementUseCase {
	if n > 0 {
		uc.recentLimit = n
	}
	return uc
}

// WithDefaultLocale locale usado cuando la petición no trae uno.
func (uc *MovementUseCase) WithDefaultLocale(tag string) *MovementUseCase {
	if tag != "" {
		uc.locale = tag
	}
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *MovementUseCase) WithClock(now func() time.Time) *MovementUseCase {
	uc.now = now
	return uc
}

// RegisterMovement valida y persiste un movimiento. Una entrada exige fecha de vencimiento
// y crea el lote correspondiente en la misma transacción; una salida sólo registra el movimiento.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, organizationID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if in.ProductID == "" || !entity.IsValidMovementKind(kind) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var expiration time.Time
	if kind == entity.MovementKindInflow {
		if in.ExpirationDate == "" {
			return nil, fmt.Errorf("%w: la fecha de vencimiento es obligatoria en entradas", domain.ErrInvalidInput)
		}
		d, err := time.Parse(dateLayout, in.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de vencimiento %q", domain.ErrInvalidInput, in.ExpirationDate)
		}
		expiration = d
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("inventory.RegisterMovement: producto: %w", err)
	}
	if product == nil || product.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	mov := &entity.Movement{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		ProductID:      product.ID,
		Kind:           kind,
		Quantity:       in.Quantity,
		Timestamp:      now,
	}
	var lot *entity.Lot
	if kind == entity.MovementKindInflow {
		lot = &entity.Lot{
			ID:             uuid.NewString(),
			OrganizationID: organizationID,
			ProductID:      product.ID,
			Quantity:       in.Quantity,
			ExpirationDate: expiration,
			CreatedAt:      now,
		}
	}

	err = uc.txRunner.Run(ctx, func(lotRepo repository.LotRepository, movRepo repository.MovementRepository) error {
		if lot != nil {
			if err := lotRepo.Create(ctx, lot); err != nil {
				return fmt.Errorf("crear lote: %w", err)
			}
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return fmt.Errorf("crear movimiento: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.RegisterMovement: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateOrganization(ctx, organizationID); err != nil {
			uc.log.Warn().Err(err).Str("organization_id", organizationID).Msg("no se pudo invalidar la caché del dashboard")
		}
	}

	out := toMovementResponse(*mov, product.Name)
	if lot != nil {
		out.LotID = lot.ID
	}
	return &out, nil
}

// RecentMovements últimos movimientos de la organización (más nuevos primero) con el nombre del producto.
// limit fuera de (0, tope] usa el tope. Un producto inexistente se muestra con el placeholder del locale.
func (uc *MovementUseCase) RecentMovements(ctx context.Context, organizationID string, limit int, locale string) ([]dto.MovementResponse, error) {
	if limit <= 0 || limit > uc.recentLimit {
		limit = uc.recentLimit
	}

	type productsResult struct {
		items []entity.Product
		err   error
	}
	productsCh := make(chan productsResult, 1)
	go func() {
		items, err := uc.productRepo.ListByOrganization(ctx, organizationID)
		productsCh <- productsResult{items, err}
	}()

	movs, err := uc.movementRepo.List(ctx, repository.MovementFilter{
		OrganizationID: organizationID,
		NewestFirst:    true,
		Limit:          limit,
	})
	products := <-productsCh
	if err != nil {
		return nil, fmt.Errorf("inventory.RecentMovements: %w", err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("inventory.RecentMovements: productos: %w", products.err)
	}

	names := make(map[string]string, len(products.items))
	for _, p := range products.items {
		names[p.ID] = p.Name
	}
	if locale == "" {
		locale = uc.locale
	}
	unknown := agg.LocaleFor(locale).UnknownProduct
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		name, ok := names[m.ProductID]
		if !ok {
			name = unknown
		}
		out = append(out, toMovementResponse(m, name))
	}
	return out, nil
}

func toMovementResponse(m entity.Movement, productName string) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: productName,
		Kind:        m.Kind,
		Quantity:    m.Quantity,
		Timestamp:   m.Timestamp,
	}
}
