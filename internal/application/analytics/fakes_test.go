package analytics_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct{ items []entity.Product }

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) UpdateName(context.Context, string, string) error { return nil }
func (f *fakeProducts) Delete(context.Context, string) error             { return nil }

func (f *fakeProducts) ListByOrganization(_ context.Context, orgID string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range f.items {
		if p.OrganizationID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeMovements struct {
	mu        sync.Mutex
	items     []entity.Movement
	err       error
	lastQuery repository.MovementFilter
}

func (f *fakeMovements) Create(_ context.Context, m *entity.Movement) error {
	f.items = append(f.items, *m)
	return nil
}

func (f *fakeMovements) List(_ context.Context, q repository.MovementFilter) ([]entity.Movement, error) {
	f.mu.Lock()
	f.lastQuery = q
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []entity.Movement{}
	for _, m := range f.items {
		if m.OrganizationID != q.OrganizationID || (q.ProductID != "" && m.ProductID != q.ProductID) {
			continue
		}
		if q.From != nil && m.Timestamp.Before(*q.From) {
			continue
		}
		if q.To != nil && !m.Timestamp.Before(*q.To) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeLots struct{ items []entity.Lot }

func (f *fakeLots) Create(_ context.Context, l *entity.Lot) error {
	f.items = append(f.items, *l)
	return nil
}

func (f *fakeLots) ListByOrganization(_ context.Context, orgID string) ([]entity.Lot, error) {
	out := []entity.Lot{}
	for _, l := range f.items {
		if l.OrganizationID == orgID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeStock struct{ items []entity.StockLevel }

func (f *fakeStock) ListByOrganization(_ context.Context, orgID string) ([]entity.StockLevel, error) {
	out := []entity.StockLevel{}
	for _, s := range f.items {
		if s.OrganizationID == orgID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeProfiles struct {
	operators int
	err       error
}

func (f *fakeProfiles) Create(context.Context, *entity.Profile) error { return nil }
func (f *fakeProfiles) GetByID(context.Context, string) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfiles) GetByEmail(context.Context, string) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfiles) ListByOrganization(context.Context, string, string) ([]*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfiles) CountByRole(context.Context, string, string) (int, error) {
	return f.operators, f.err
}
func (f *fakeProfiles) Update(context.Context, *entity.Profile) error { return nil }
func (f *fakeProfiles) Delete(context.Context, string) error           { return nil }

// fakeCache caché en memoria; serializa en JSON como lo haría Redis.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	hits   int
	getErr error
	setErr error
}

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dst)
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string][]byte{}
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) InvalidateOrganization(context.Context, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	return nil
}
