package analytics

import (
	"context"
	"time"
)

// ResultCache caché opcional de vistas calculadas (Redis en producción).
type ResultCache interface {
	// Get carga en dst el valor guardado bajo key. found=false si no existe.
	Get(ctx context.Context, key string, dst any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// InvalidateOrganization borra todas las vistas cacheadas de la organización.
	InvalidateOrganization(ctx context.Context, organizationID string) error
}

// NopCache no guarda nada.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NopCache) InvalidateOrganization(context.Context, string) error { return nil }

// CacheKey clave de caché de una vista de organización.
func CacheKey(organizationID, view string) string {
	return "dashboard:" + organizationID + ":" + view
}
