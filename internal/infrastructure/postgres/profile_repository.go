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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `perfil_id, organizacion_id, nombre, apellido, correo, COALESCE(password_hash, ''), tipo, created_at`

// ProfileRepo implementación de ProfileRepository sobre cold_stock.perfil.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un perfil. El correo es único.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	const query = `
		INSERT INTO perfil (perfil_id, organizacion_id, nombre, apellido, correo, password_hash, tipo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OrganizationID, p.FirstName, p.LastName, p.Email, p.PasswordHash, p.Role, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert perfil: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM perfil WHERE perfil_id = $1`, id)
}

// GetByEmail obtiene un perfil por correo (sin distinguir mayúsculas).
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM perfil WHERE lower(correo) = lower($1) LIMIT 1`, email)
}

func (r *ProfileRepo) getOne(ctx context.Context, query string, arg string) (*entity.Profile, error) {
	p, err := scanProfile(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfil: %w", err)
	}
	return p, nil
}

// ListByOrganization lista perfiles de la organización, opcionalmente filtrados por tipo.
func (r *ProfileRepo) ListByOrganization(ctx context.Context, organizationID, role string) ([]*entity.Profile, error) {
	const query = `SELECT ` + profileColumns + `
		FROM perfil
		WHERE organizacion_id = $1 AND ($2 = '' OR tipo = $2)
		ORDER BY nombre, apellido`
	rows, err := r.q.Query(ctx, query, organizationID, role)
	if err != nil {
		return nil, fmt.Errorf("list perfiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan perfil: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByRole cuenta los perfiles de un tipo en la organización.
func (r *ProfileRepo) CountByRole(ctx context.Context, organizationID, role string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM perfil WHERE organizacion_id = $1 AND tipo = $2`,
		organizationID, role,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count perfiles: %w", err)
	}
	return n, nil
}

// Update actualiza los datos de contacto del perfil.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	const query = `
		UPDATE perfil SET nombre = $2, apellido = $3, correo = $4
		WHERE perfil_id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.FirstName, p.LastName, p.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update perfil: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un perfil.
func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM perfil WHERE perfil_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete perfil: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var p entity.Profile
	if err := row.Scan(&p.ID, &p.OrganizationID, &p.FirstName, &p.LastName, &p.Email,
		&p.PasswordHash, &p.Role, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
