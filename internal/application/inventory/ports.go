package inventory

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Una entrada crea lote y movimiento de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// CacheInvalidator descarta las vistas cacheadas del dashboard tras un cambio de inventario.
type CacheInvalidator interface {
	InvalidateOrganization(ctx context.Context, organizationID string) error
}
