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

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository sobre cold_stock.organizacion.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	const query = `
		INSERT INTO organizacion (organizacion_id, nombre, foto, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4)`
	if _, err := r.q.Exec(ctx, query, org.ID, org.Name, org.PhotoURL, org.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organizacion: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	const query = `
		SELECT organizacion_id, nombre, COALESCE(foto, ''), created_at
		FROM organizacion WHERE organizacion_id = $1`
	var o entity.Organization
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.PhotoURL, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organizacion: %w", err)
	}
	return &o, nil
}

// UpdateName renombra la organización.
func (r *OrganizationRepo) UpdateName(ctx context.Context, id, name string) error {
	tag, err := r.q.Exec(ctx, `UPDATE organizacion SET nombre = $2 WHERE organizacion_id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("update organizacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las organizaciones (uso interno: jobs).
func (r *OrganizationRepo) List(ctx context.Context) ([]*entity.Organization, error) {
	const query = `
		SELECT organizacion_id, nombre, COALESCE(foto, ''), created_at
		FROM organizacion ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list organizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.PhotoURL, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan organizacion: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
