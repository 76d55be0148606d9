package inventory_test

import (
	"context"
	"errors"
	"sort"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

type fakeProducts struct {
	items     []entity.Product
	deleteErr error
}

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

func (f *fakeProducts) ListByOrganization(_ context.Context, orgID string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range f.items {
		if p.OrganizationID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) UpdateName(_ context.Context, id, name string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = name
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeLots struct {
	items []entity.Lot
	err   error
}

func (f *fakeLots) Create(_ context.Context, l *entity.Lot) error {
	if f.err != nil {
		return f.err
	}
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

type fakeMovements struct {
	items     []entity.Movement
	lastQuery repository.MovementFilter
}

func (f *fakeMovements) Create(_ context.Context, m *entity.Movement) error {
	f.items = append(f.items, *m)
	return nil
}

func (f *fakeMovements) List(_ context.Context, q repository.MovementFilter) ([]entity.Movement, error) {
	f.lastQuery = q
	out := []entity.Movement{}
	for _, m := range f.items {
		if m.OrganizationID == q.OrganizationID {
			out = append(out, m)
		}
	}
	if q.NewestFirst {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// fakeTx aplica los cambios sólo si fn no falla, como una transacción real.
type fakeTx struct {
	lots  *fakeLots
	movs  *fakeMovements
	calls int
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.LotRepository, repository.MovementRepository) error) error {
	f.calls++
	stagedLots := &fakeLots{err: f.lots.err}
	stagedMovs := &fakeMovements{}
	if err := fn(stagedLots, stagedMovs); err != nil {
		return err
	}
	f.lots.items = append(f.lots.items, stagedLots.items...)
	f.movs.items = append(f.movs.items, stagedMovs.items...)
	return nil
}

type fakeCache struct {
	invalidated []string
	err         error
}

func (f *fakeCache) InvalidateOrganization(_ context.Context, orgID string) error {
	f.invalidated = append(f.invalidated, orgID)
	return f.err
}

var errBoom = errors.New("boom")
