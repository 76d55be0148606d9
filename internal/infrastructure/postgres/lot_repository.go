package postgres

import (
	"context"
	"fmt"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre cold_stock.lote.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote. fecha_vencimiento es DATE: sólo cuenta año/mes/día.
func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	const query = `
		INSERT INTO lote (lote_id, organizacion_id, producto_id, cantidad, fecha_vencimiento, created_at)
		VALUES ($1, $2, $3, $4, $5::date, $6)`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.OrganizationID, lot.ProductID, lot.Quantity,
		lot.ExpirationDate.Format("2006-01-02"), lot.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// ListByOrganization lista los lotes de la organización por fecha de vencimiento ascendente.
func (r *LotRepo) ListByOrganization(ctx context.Context, organizationID string) ([]entity.Lot, error) {
	const query = `
		SELECT lote_id, organizacion_id, producto_id, cantidad, fecha_vencimiento, created_at
		FROM lote WHERE organizacion_id = $1
		ORDER BY fecha_vencimiento, lote_id`
	rows, err := r.q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	list := []entity.Lot{}
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.OrganizationID, &l.ProductID, &l.Quantity, &l.ExpirationDate, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
