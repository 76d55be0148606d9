package postgres

import (
	"context"
	"fmt"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lectura de la vista cold_stock.stock_producto.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ListByOrganization devuelve el stock actual por producto.
func (r *StockRepo) ListByOrganization(ctx context.Context, organizationID string) ([]entity.StockLevel, error) {
	const query = `
		SELECT producto_id, COALESCE(producto_nombre, ''), organizacion_id,
		       COALESCE(stock_actual, 0), COALESCE(lotes_activos, 0)
		FROM stock_producto WHERE organizacion_id = $1`
	rows, err := r.q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list stock_producto: %w", err)
	}
	defer rows.Close()
	list := []entity.StockLevel{}
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.OrganizationID, &s.CurrentStock, &s.ActiveLots); err != nil {
			return nil, fmt.Errorf("scan stock_producto: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
