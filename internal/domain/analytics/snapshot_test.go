package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

func TestSnapshot_OrdenLimiteYStockFaltante(t *testing.T) {
	var products []entity.Product
	for i := 1; i <= 10; i++ {
		products = append(products, entity.Product{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Producto %d", i)})
	}
	levels := []entity.StockLevel{
		{ProductID: "p3", CurrentStock: 30},
		{ProductID: "p1", CurrentStock: 10},
		{ProductID: "p9", CurrentStock: 90},
	}

	got := analytics.Snapshot(products, levels, analytics.SnapshotOptions{})

	require.Len(t, got, analytics.DefaultSnapshotLimit)
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, int64(10), got[0].CurrentStock)
	assert.Equal(t, int64(0), got[1].CurrentStock, "sin fila de stock cuenta como 0")
	assert.Equal(t, int64(30), got[2].CurrentStock)
	assert.Equal(t, "p8", got[7].ProductID, "mantiene el orden del store, no ordena por stock")
}

func TestSnapshot_TruncaNombres(t *testing.T) {
	products := []entity.Product{
		{ID: "a", Name: "Vacuna contra la influenza"},
		{ID: "b", Name: "Quince letras!!"},
		{ID: "c", Name: "Ñandú congelado extra"},
	}

	got := analytics.Snapshot(products, nil, analytics.SnapshotOptions{})

	require.Len(t, got, 3)
	assert.Equal(t, "Vacuna contra l...", got[0].Name)
	assert.Equal(t, "Vacuna contra la influenza", got[0].FullName)
	assert.Equal(t, "Quince letras!!", got[1].Name, "15 runas exactas no se truncan")
	assert.Equal(t, "Ñandú congelado...", got[2].Name, "cuenta runas, no bytes")
}

func TestSnapshot_Vacio(t *testing.T) {
	got := analytics.Snapshot(nil, nil, analytics.SnapshotOptions{Limit: 3})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTruncateName_PresupuestoCero(t *testing.T) {
	assert.Equal(t, "sin límite", analytics.TruncateName("sin límite", 0))
}
