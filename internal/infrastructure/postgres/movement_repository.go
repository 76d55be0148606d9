package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre cold_stock.movimiento.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	const query = `
		INSERT INTO movimiento (movimiento_id, organizacion_id, producto_id, tipo, cantidad, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.OrganizationID, m.ProductID, m.Kind, m.Quantity, m.Timestamp)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// List consulta movimientos de la organización aplicando los filtros opcionales.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]entity.Movement, error) {
	query, args := buildMovementQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	list := []entity.Movement{}
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.ProductID, &m.Kind, &m.Quantity, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func buildMovementQuery(f repository.MovementFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT movimiento_id, organizacion_id, producto_id, tipo, cantidad, fecha
		FROM movimiento WHERE organizacion_id = $1`)
	args := []any{f.OrganizationID}

	if f.ProductID != "" {
		args = append(args, f.ProductID)
		fmt.Fprintf(&sb, " AND producto_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		fmt.Fprintf(&sb, " AND fecha >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		fmt.Fprintf(&sb, " AND fecha < $%d", len(args))
	}
	if f.NewestFirst {
		sb.WriteString(" ORDER BY fecha DESC, movimiento_id")
	} else {
		sb.WriteString(" ORDER BY fecha, movimiento_id")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	return sb.String(), args
}
