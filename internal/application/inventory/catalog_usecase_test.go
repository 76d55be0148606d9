package inventory_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/inventory"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

func TestCreateProduct_NombreVacio(t *testing.T) {
	uc := inventory.NewCatalogUseCase(&fakeProducts{}, &fakeLots{}, nil, zerolog.Nop())
	_, err := uc.CreateProduct(context.Background(), "org-1", dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_Lista(t *testing.T) {
	products := &fakeProducts{}
	cache := &fakeCache{}
	uc := inventory.NewCatalogUseCase(products, &fakeLots{}, cache, zerolog.Nop())

	out, err := uc.CreateProduct(context.Background(), "org-1", dto.CreateProductRequest{Name: " Vacuna "})
	require.NoError(t, err)
	assert.Equal(t, "Vacuna", out.Name)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, []string{"org-1"}, cache.invalidated)

	list, err := uc.ListProducts(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, out.ID, list[0].ID)

	other, err := uc.ListProducts(context.Background(), "org-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListLots_ConNombreYFecha(t *testing.T) {
	products := &fakeProducts{items: []entity.Product{{ID: "p1", OrganizationID: "org-1", Name: "Vacuna"}}}
	lots := &fakeLots{items: []entity.Lot{{
		ID: "l1", OrganizationID: "org-1", ProductID: "p1", Quantity: 9,
		ExpirationDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}}}
	uc := inventory.NewCatalogUseCase(products, lots, nil, zerolog.Nop())

	out, err := uc.ListLots(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Vacuna", out[0].ProductName)
	assert.Equal(t, "2025-06-30", out[0].ExpirationDate)
	assert.Equal(t, int64(9), out[0].Quantity)
}

func catalogFixture() *fakeProducts {
	return &fakeProducts{items: []entity.Product{
		{ID: "p1", OrganizationID: "org-1", Name: "Vacuna"},
		{ID: "p2", OrganizationID: "org-2", Name: "Suero"},
	}}
}

func TestUpdateProduct_Renombra(t *testing.T) {
	products := catalogFixture()
	cache := &fakeCache{}
	uc := inventory.NewCatalogUseCase(products, &fakeLots{}, cache, zerolog.Nop())

	out, err := uc.UpdateProduct(context.Background(), "org-1", "p1", dto.UpdateProductRequest{Name: " Vacuna B "})
	require.NoError(t, err)
	assert.Equal(t, "Vacuna B", out.Name)
	assert.Equal(t, "p1", out.ID)
	assert.Equal(t, "Vacuna B", products.items[0].Name)
	assert.Equal(t, []string{"org-1"}, cache.invalidated)
}

func TestUpdateProduct_Errores(t *testing.T) {
	cache := &fakeCache{}
	uc := inventory.NewCatalogUseCase(catalogFixture(), &fakeLots{}, cache, zerolog.Nop())

	_, err := uc.UpdateProduct(context.Background(), "org-1", "p1", dto.UpdateProductRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateProduct(context.Background(), "org-1", "p2", dto.UpdateProductRequest{Name: "Robado"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un producto de otra organización no existe")

	_, err = uc.UpdateProduct(context.Background(), "org-1", "nada", dto.UpdateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, cache.invalidated)
}

func TestDeleteProduct(t *testing.T) {
	products := catalogFixture()
	cache := &fakeCache{}
	uc := inventory.NewCatalogUseCase(products, &fakeLots{}, cache, zerolog.Nop())

	assert.ErrorIs(t, uc.DeleteProduct(context.Background(), "org-1", "p2"), domain.ErrNotFound)
	require.NoError(t, uc.DeleteProduct(context.Background(), "org-1", "p1"))
	assert.Equal(t, []string{"org-1"}, cache.invalidated)

	list, err := uc.ListProducts(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteProduct_ConHistorial(t *testing.T) {
	products := catalogFixture()
	products.deleteErr = domain.ErrInUse
	cache := &fakeCache{}
	uc := inventory.NewCatalogUseCase(products, &fakeLots{}, cache, zerolog.Nop())

	assert.ErrorIs(t, uc.DeleteProduct(context.Background(), "org-1", "p1"), domain.ErrInUse)
	assert.Empty(t, cache.invalidated)
	assert.Len(t, products.items, 2)
}

// Si la caché falla el alta sigue adelante y queda un aviso en el log.
func TestCreateProduct_FalloDeCacheSeRegistra(t *testing.T) {
	var buf bytes.Buffer
	cache := &fakeCache{err: errBoom}
	uc := inventory.NewCatalogUseCase(&fakeProducts{}, &fakeLots{}, cache, zerolog.New(&buf))

	_, err := uc.CreateProduct(context.Background(), "org-1", dto.CreateProductRequest{Name: "Vacuna"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"organization_id":"org-1"`)
	assert.Contains(t, buf.String(), "boom")
}
