package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/auth"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/inventory"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

var (
	_ inventory.TxRunner        = (*TxRunner)(nil)
	_ auth.RegistrationTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db Beginner
}

// NewTxRunner construye el runner con el pool (o cualquier Beginner).
func NewTxRunner(db Beginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos de lotes y movimientos atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	lotRepo repository.LotRepository,
	movRepo repository.MovementRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewLotRepository(tx), NewMovementRepository(tx))
	})
}

// RunRegistration inicia una transacción con repos de organización y perfil (alta de cuenta).
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	orgRepo repository.OrganizationRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewOrganizationRepository(tx), NewProfileRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
