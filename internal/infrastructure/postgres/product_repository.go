package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre cold_stock.producto.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	const query = `
		INSERT INTO producto (producto_id, organizacion_id, nombre, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, p.ID, p.OrganizationID, p.Name, p.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	const query = `
		SELECT producto_id, organizacion_id, nombre, created_at
		FROM producto WHERE producto_id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.OrganizationID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListByOrganization lista los productos de la organización en orden de creación.
func (r *ProductRepo) ListByOrganization(ctx context.Context, organizationID string) ([]entity.Product, error) {
	const query = `
		SELECT producto_id, organizacion_id, nombre, created_at
		FROM producto WHERE organizacion_id = $1
		ORDER BY created_at, producto_id`
	rows, err := r.q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateName renombra un producto.
func (r *ProductRepo) UpdateName(ctx context.Context, id, name string) error {
	tag, err := r.q.Exec(ctx, `UPDATE producto SET nombre = $2 WHERE producto_id = $1`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto sin lotes ni movimientos.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM producto WHERE producto_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
