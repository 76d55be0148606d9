package http

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
)

// ContactService formulario público de contacto.
type ContactService interface {
	Submit(ctx context.Context, in dto.ContactRequest) error
}

// ContactHandler recibe el formulario de la landing.
type ContactHandler struct {
	uc      ContactService
	limiter *IPRateLimiter
}

// NewContactHandler construye el handler. limiter puede ser nil.
func NewContactHandler(uc ContactService, limiter *IPRateLimiter) *ContactHandler {
	return &ContactHandler{uc: uc, limiter: limiter}
}

// Submit godoc
// @Summary      Enviar formulario de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "name, email, phone, message"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	if h.limiter != nil && !h.limiter.Allow(c.IP()) {
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas solicitudes, intente más tarde"})
	}
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Submit(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ── Rate limit por IP ─────────────────────────────────────────────────────────

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter un token bucket por IP; los visitantes inactivos se purgan con Cleanup.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewIPRateLimiter perMinute solicitudes por minuto con ráfaga burst.
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consume un token de la IP.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Cleanup elimina visitantes sin actividad en idle.
func (l *IPRateLimiter) Cleanup(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for ip, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > idle {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup purga visitantes cada minuto hasta que ctx termine.
func (l *IPRateLimiter) RunCleanup(ctx context.Context, idle time.Duration) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Cleanup(idle)
		}
	}
}
