package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/postgres"
)

var movementColumns = []string{"movimiento_id", "organizacion_id", "producto_id", "tipo", "cantidad", "fecha"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestMovementRepo_ListConFiltros(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewMovementRepository(mock)

	from := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	ts := from.Add(2 * time.Hour)

	mock.ExpectQuery(`FROM movimiento WHERE organizacion_id = \$1 AND producto_id = \$2 AND fecha >= \$3 AND fecha < \$4 ORDER BY fecha, movimiento_id LIMIT \$5`).
		WithArgs("org-1", "p-1", from, to, 10).
		WillReturnRows(pgxmock.NewRows(movementColumns).
			AddRow("m-1", "org-1", "p-1", entity.MovementKindInflow, int64(12), ts).
			AddRow("m-2", "org-1", "p-1", entity.MovementKindOutflow, int64(4), ts.Add(time.Hour)))

	got, err := repo.List(context.Background(), repository.MovementFilter{
		OrganizationID: "org-1", ProductID: "p-1", From: &from, To: &to, Limit: 10,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(12), got[0].Quantity)
	assert.Equal(t, int64(-4), got[1].SignedQuantity())
}

func TestMovementRepo_ListRecientes(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewMovementRepository(mock)

	mock.ExpectQuery(`FROM movimiento WHERE organizacion_id = \$1 ORDER BY fecha DESC, movimiento_id LIMIT \$2`).
		WithArgs("org-1", 50).
		WillReturnRows(pgxmock.NewRows(movementColumns))

	got, err := repo.List(context.Background(), repository.MovementFilter{OrganizationID: "org-1", NewestFirst: true, Limit: 50})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMovementRepo_CreateProductoInexistente(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewMovementRepository(mock)
	m := &entity.Movement{ID: "m-1", OrganizationID: "org-1", ProductID: "nope", Kind: entity.MovementKindOutflow, Quantity: 1, Timestamp: time.Now()}

	mock.ExpectExec(`INSERT INTO movimiento`).
		WithArgs(m.ID, m.OrganizationID, m.ProductID, m.Kind, m.Quantity, m.Timestamp).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
