package inventory_test

import (
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

type movementFixture struct {
	products *fakeProducts
	lots     *fakeLots
	movs     *fakeMovements
	tx       *fakeTx
	cache    *fakeCache
	uc       *inventory.MovementUseCase
}

var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	f := &movementFixture{
		products: &fakeProducts{items: []entity.Product{
			{ID: "p1", OrganizationID: "org-1", Name: "Vacuna"},
			{ID: "p2", OrganizationID: "org-2", Name: "Insulina"},
		}},
		lots:  &fakeLots{},
		movs:  &fakeMovements{},
		cache: &fakeCache{},
	}
	f.tx = &fakeTx{lots: f.lots, movs: f.movs}
	f.uc = inventory.NewMovementUseCase(f.tx, f.products, f.movs, f.cache, zerolog.Nop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func TestRegisterMovement_EntradaCreaLoteYMovimiento(t *testing.T) {
	f := newMovementFixture(t)

	out, err := f.uc.RegisterMovement(context.Background(), "org-1", dto.RegisterMovementRequest{
		ProductID: "p1", Kind: "entrada", Quantity: 12, ExpirationDate: "2025-04-01",
	})
	require.NoError(t, err)
	require.Len(t, f.lots.items, 1)
	require.Len(t, f.movs.items, 1)

	lot := f.lots.items[0]
	assert.Equal(t, out.LotID, lot.ID)
	assert.Equal(t, int64(12), lot.Quantity)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), lot.ExpirationDate)
	assert.Equal(t, "org-1", lot.OrganizationID)

	mov := f.movs.items[0]
	assert.Equal(t, out.ID, mov.ID)
	assert.Equal(t, entity.MovementKindInflow, mov.Kind)
	assert.Equal(t, fixedNow, mov.Timestamp)
	assert.Equal(t, "Vacuna", out.ProductName)
	assert.Equal(t, []string{"org-1"}, f.cache.invalidated)
}

func TestRegisterMovement_SalidaSoloRegistraMovimiento(t *testing.T) {
	f := newMovementFixture(t)

	out, err := f.uc.RegisterMovement(context.Background(), "org-1", dto.RegisterMovementRequest{
		ProductID: "p1", Kind: "SALIDA", Quantity: 3,
	})
	require.NoError(t, err)
	assert.Empty(t, f.lots.items)
	require.Len(t, f.movs.items, 1)
	assert.Equal(t, entity.MovementKindOutflow, f.movs.items[0].Kind)
	assert.Empty(t, out.LotID)
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
	}{
		{"sin producto", dto.RegisterMovementRequest{Kind: "salida", Quantity: 1}},
		{"tipo invalido", dto.RegisterMovementRequest{ProductID: "p1", Kind: "ajuste", Quantity: 1}},
		{"cantidad cero", dto.RegisterMovementRequest{ProductID: "p1", Kind: "salida", Quantity: 0}},
		{"entrada sin vencimiento", dto.RegisterMovementRequest{ProductID: "p1", Kind: "entrada", Quantity: 5}},
		{"fecha mal formada", dto.RegisterMovementRequest{ProductID: "p1", Kind: "entrada", Quantity: 5, ExpirationDate: "01/04/2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newMovementFixture(t)
			_, err := f.uc.RegisterMovement(context.Background(), "org-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestRegisterMovement_ProductoDeOtraOrganizacion(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.RegisterMovement(context.Background(), "org-1", dto.RegisterMovementRequest{
		ProductID: "p2", Kind: "salida", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.movs.items)
}

func TestRegisterMovement_FalloDeLoteNoDejaMovimiento(t *testing.T) {
	f := newMovementFixture(t)
	f.lots.err = errBoom

	_, err := f.uc.RegisterMovement(context.Background(), "org-1", dto.RegisterMovementRequest{
		ProductID: "p1", Kind: "entrada", Quantity: 4, ExpirationDate: "2025-05-01",
	})
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, f.movs.items)
	assert.Empty(t, f.cache.invalidated)
}

func TestRegisterMovement_FalloDeCacheNoEsError(t *testing.T) {
	f := newMovementFixture(t)
	f.cache.err = errBoom

	_, err := f.uc.RegisterMovement(context.Background(), "org-1", dto.RegisterMovementRequest{
		ProductID: "p1", Kind: "salida", Quantity: 2,
	})
	assert.NoError(t, err)
}

func TestRecentMovements_MasNuevosPrimeroConNombre(t *testing.T) {
	f := newMovementFixture(t)
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		f.movs.items = append(f.movs.items, entity.Movement{
			ID: string(rune('a' + i)), OrganizationID: "org-1", ProductID: "p1",
			Kind: entity.MovementKindInflow, Quantity: 1, Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
	}
	f.movs.items = append(f.movs.items, entity.Movement{
		ID: "z", OrganizationID: "org-1", ProductID: "borrado", Kind: entity.MovementKindOutflow, Quantity: 1, Timestamp: base.Add(-time.Hour),
	})

	out, err := f.uc.RecentMovements(context.Background(), "org-1", 0, "")
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "Vacuna", out[0].ProductName)
	assert.Equal(t, "z", out[3].ID)
	assert.Equal(t, "Producto desconocido", out[3].ProductName)

	en, err := f.uc.RecentMovements(context.Background(), "org-1", 0, "en")
	require.NoError(t, err)
	assert.Equal(t, "Unknown product", en[3].ProductName)

	assert.Equal(t, inventory.DefaultRecentLimit, f.movs.lastQuery.Limit)
	assert.True(t, f.movs.lastQuery.NewestFirst)
}

func TestRecentMovements_LimiteExplicito(t *testing.T) {
	f := newMovementFixture(t)
	_, err := f.uc.RecentMovements(context.Background(), "org-1", 10, "")
	require.NoError(t, err)
	assert.Equal(t, 10, f.movs.lastQuery.Limit)

	_, err = f.uc.RecentMovements(context.Background(), "org-1", 500, "")
	require.NoError(t, err)
	assert.Equal(t, inventory.DefaultRecentLimit, f.movs.lastQuery.Limit)
}
