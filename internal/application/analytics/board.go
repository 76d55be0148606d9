package analytics

import (
	"context"
	"strings"
	"sync"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
)

// ViewKey identifica una vista del dashboard: organización, usuario y vista.
func ViewKey(organizationID, userID, view string) string {
	return strings.Join([]string{organizationID, userID, view}, "/")
}

// Ticket generación asignada a un refresco de una vista.
type Ticket struct {
	Key        string
	Generation uint64
}

type generation struct {
	seq    uint64
	cancel context.CancelFunc
}

type slot struct {
	generation uint64
	value      any
}

// DefaultSlotLimit vistas publicadas que conserva un Board.
const DefaultSlotLimit = 10000

// Board lleva un contador de generación por vista y guarda el último resultado publicado.
// Empezar una generación nueva cancela el contexto de la anterior; un resultado sólo se
// publica si su generación sigue siendo la última.
//
// Las generaciones salen de un contador único del tablero, así que nunca se repiten aunque
// la entrada de una vista se libere al terminar. Sólo viven en gens las vistas con una
// consulta en curso; slots guarda como máximo limit resultados y descarta los más antiguos.
type Board struct {
	mu    sync.Mutex
	seq   uint64
	limit int
	gens  map[string]*generation
	slots map[string]slot
}

// NewBoard construye un tablero vacío con DefaultSlotLimit.
func NewBoard() *Board { return NewBoardWithLimit(DefaultSlotLimit) }

// NewBoardWithLimit construye un tablero que conserva a lo sumo limit resultados publicados.
func NewBoardWithLimit(limit int) *Board {
	if limit <= 0 {
		limit = DefaultSlotLimit
	}
	return &Board{limit: limit, gens: map[string]*generation{}, slots: map[string]slot{}}
}

// Begin abre una generación nueva para key y cancela la anterior si seguía en curso.
func (b *Board) Begin(parent context.Context, key string) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(parent)

	b.mu.Lock()
	defer b.mu.Unlock()
	g, ok := b.gens[key]
	if !ok {
		g = &generation{}
		b.gens[key] = g
	} else if g.cancel != nil {
		g.cancel()
	}
	b.seq++
	g.seq = b.seq
	g.cancel = cancel
	return ctx, Ticket{Key: key, Generation: g.seq}
}

// Current informa si t sigue siendo la última generación de su vista.
func (b *Board) Current(t Ticket) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentLocked(t)
}

func (b *Board) currentLocked(t Ticket) bool {
	g, ok := b.gens[t.Key]
	return ok && g.seq == t.Generation
}

// Publish guarda value en la vista si t es la última generación; si no, devuelve ErrStaleResult.
func (b *Board) Publish(t Ticket, value any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.currentLocked(t) {
		return domain.ErrStaleResult
	}
	b.slots[t.Key] = slot{generation: t.Generation, value: value}
	if len(b.slots) > b.limit {
		b.evictOldestLocked()
	}
	return nil
}

func (b *Board) evictOldestLocked() {
	var (
		oldestKey string
		oldest    uint64
		found     bool
	)
	for k, s := range b.slots {
		if !found || s.generation < oldest {
			oldestKey, oldest, found = k, s.generation, true
		}
	}
	if found {
		delete(b.slots, oldestKey)
	}
}

// Finish libera el contexto de t. Si t sigue siendo la última generación, la vista queda
// inactiva y su entrada se libera.
func (b *Board) Finish(t Ticket) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if g, ok := b.gens[t.Key]; ok && g.seq == t.Generation {
		if g.cancel != nil {
			g.cancel()
		}
		delete(b.gens, t.Key)
	}
}

// Stats vistas con consulta en curso y resultados publicados que conserva el tablero.
func (b *Board) Stats() (inFlight, published int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.gens), len(b.slots)
}

// Latest devuelve el último resultado publicado para key.
func (b *Board) Latest(key string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.slots[key]
	return s.value, ok
}

// Refresh ejecuta compute bajo una generación nueva de key y publica el resultado.
// Si mientras tanto empezó otra generación, el resultado se descarta con ErrStaleResult.
// Si compute falla, la vista conserva el último resultado publicado.
func Refresh[T any](ctx context.Context, b *Board, key string, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	ctx, ticket := b.Begin(ctx, key)
	defer b.Finish(ticket)

	v, err := compute(ctx)
	if err != nil {
		if !b.Current(ticket) {
			return zero, domain.ErrStaleResult
		}
		return zero, err
	}
	if err := b.Publish(ticket, v); err != nil {
		return zero, err
	}
	return v, nil
}
