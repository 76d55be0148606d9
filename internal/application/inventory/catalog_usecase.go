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
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// CatalogUseCase productos y lotes de la organización.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
	cache       CacheInvalidator
	log         zerolog.Logger
}

// NewCatalogUseCase construye el caso de uso. cache puede ser nil.
func NewCatalogUseCase(productRepo repository.ProductRepository, lotRepo repository.LotRepository, cache CacheInvalidator, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, lotRepo: lotRepo, cache: cache, log: log}
}

// CreateProduct da de alta un producto en la organización.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, organizationID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Product{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		CreatedAt:      time.Now(),
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("inventory.CreateProduct: %w", err)
	}
	uc.invalidate(ctx, organizationID)
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}, nil
}

// UpdateProduct renombra un producto de la organización.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, organizationID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.ownedProduct(ctx, organizationID, productID)
	if err != nil {
		return nil, fmt.Errorf("inventory.UpdateProduct: %w", err)
	}
	if err := uc.productRepo.UpdateName(ctx, p.ID, name); err != nil {
		return nil, fmt.Errorf("inventory.UpdateProduct: %w", err)
	}
	uc.invalidate(ctx, organizationID)
	return &dto.ProductResponse{ID: p.ID, Name: name, CreatedAt: p.CreatedAt}, nil
}

// DeleteProduct elimina un producto sin lotes ni movimientos.
// Devuelve domain.ErrInUse si el producto tiene historial.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, organizationID, productID string) error {
	p, err := uc.ownedProduct(ctx, organizationID, productID)
	if err != nil {
		return fmt.Errorf("inventory.DeleteProduct: %w", err)
	}
	if err := uc.productRepo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("inventory.DeleteProduct: %w", err)
	}
	uc.invalidate(ctx, organizationID)
	return nil
}

// ownedProduct un producto de otra organización se trata como inexistente.
func (uc *CatalogUseCase) ownedProduct(ctx context.Context, organizationID, productID string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *CatalogUseCase) invalidate(ctx context.Context, organizationID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateOrganization(ctx, organizationID); err != nil {
		uc.log.Warn().Err(err).Str("organization_id", organizationID).Msg("no se pudo invalidar la caché del dashboard")
	}
}

// ListProducts productos de la organización en orden de alta.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, organizationID string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListProducts: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	return out, nil
}

// ListLots lotes de la organización por fecha de vencimiento, con el nombre del producto.
func (uc *CatalogUseCase) ListLots(ctx context.Context, organizationID string) ([]dto.LotResponse, error) {
	lots, err := uc.lotRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListLots: %w", err)
	}
	products, err := uc.productRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListLots: productos: %w", err)
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, dto.LotResponse{
			ID:             l.ID,
			ProductID:      l.ProductID,
			ProductName:    names[l.ProductID],
			Quantity:       l.Quantity,
			ExpirationDate: l.ExpirationDate.Format(dateLayout),
			CreatedAt:      l.CreatedAt,
		})
	}
	return out, nil
}
