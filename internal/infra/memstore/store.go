// Package memstore keeps registrations in process. It backs STORE_DRIVER=memory
// for local development and the admission tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/infra/converter"
	"event-registration/internal/usecase/queries"
	"event-registration/internal/usecase/shared"
)

// Store serializes every write transaction behind one mutex, which covers the per-event lock as well.
type Store struct {
	mu    sync.RWMutex
	rows  map[string]*registration.Registration
	order []string
}

func New() *Store {
	return &Store{rows: make(map[string]*registration.Registration)}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("transaction aborted", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, staged: make(map[string]*registration.Registration)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	// Commit: staged rows replace or extend the committed state.
	for _, id := range tx.added {
		s.order = append(s.order, id)
	}
	for id, reg := range tx.staged {
		s.rows[id] = reg
	}
	return nil
}

func (s *Store) Reads() shared.RegistrationReads {
	return &lockedReads{store: s}
}

func (s *Store) Occupancy(ctx context.Context, kind event.Kind, slotLabel string) (int, error) {
	return s.Reads().Occupancy(ctx, kind, slotLabel)
}

func (s *Store) List(_ context.Context, filter queries.ListFilter) ([]queries.RegistrationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*registration.Registration, 0, len(s.order))
	for _, id := range s.order {
		reg := s.rows[id]
		if filter.EventKind != "" && string(reg.EventKind()) != filter.EventKind {
			continue
		}
		if filter.SlotLabel != "" && reg.SlotLabel() != filter.SlotLabel {
			continue
		}
		if filter.Status != "" && string(reg.Status()) != filter.Status {
			continue
		}
		matched = append(matched, reg)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt().Before(matched[j].CreatedAt())
	})

	views := make([]queries.RegistrationView, len(matched))
	for i, reg := range matched {
		views[i] = converter.RegistrationToView(reg)
	}
	return views, nil
}

// Seed inserts records as-is, bypassing admission. Used to load fixtures and legacy rows.
func (s *Store) Seed(regs ...*registration.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, reg := range regs {
		if _, exists := s.rows[reg.ID()]; !exists {
			s.order = append(s.order, reg.ID())
		}
		s.rows[reg.ID()] = clone(reg)
	}
}

// view is the read surface shared by committed state and an open transaction.
type view interface {
	get(id string) (*registration.Registration, bool)
	each(fn func(reg *registration.Registration))
}

func (s *Store) get(id string) (*registration.Registration, bool) {
	reg, ok := s.rows[id]
	return reg, ok
}

func (s *Store) each(fn func(reg *registration.Registration)) {
	for _, id := range s.order {
		fn(s.rows[id])
	}
}

func occupancy(v view, kind event.Kind, slotLabel string) int {
	total := 0
	v.each(func(reg *registration.Registration) {
		if reg.EventKind() != kind || !reg.IsActive() {
			return
		}
		if slotLabel != "" && reg.SlotLabel() != slotLabel {
			return
		}
		total += reg.Seats()
	})
	return total
}

func activeEmailOwner(v view, kind event.Kind, email registration.Email) (string, bool) {
	var owner string
	v.each(func(reg *registration.Registration) {
		if owner == "" && reg.EventKind() == kind && reg.IsActive() && reg.Email() == email {
			owner = reg.ID()
		}
	})
	return owner, owner != ""
}

func findByID(v view, id string) (*registration.Registration, error) {
	reg, ok := v.get(id)
	if !ok {
		return nil, infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return clone(reg), nil
}

func clone(reg *registration.Registration) *registration.Registration {
	return reg.WithID(reg.ID())
}

type lockedReads struct {
	store *Store
}

func (r *lockedReads) Occupancy(_ context.Context, kind event.Kind, slotLabel string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return occupancy(r.store, kind, slotLabel), nil
}

func (r *lockedReads) ActiveEmailExists(_ context.Context, kind event.Kind, email registration.Email) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := activeEmailOwner(r.store, kind, email)
	return ok, nil
}

func (r *lockedReads) FindByID(_ context.Context, id string) (*registration.Registration, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return findByID(r.store, id)
}

// memTx runs with Store.mu held; it must not take the lock again.
type memTx struct {
	store  *Store
	staged map[string]*registration.Registration
	added  []string
}

func (t *memTx) Registrations() shared.RegistrationRepository { return t }
func (t *memTx) Reads() shared.RegistrationReads               { return txReads{t} }

func (t *memTx) get(id string) (*registration.Registration, bool) {
	if reg, ok := t.staged[id]; ok {
		return reg, true
	}
	return t.store.get(id)
}

func (t *memTx) each(fn func(reg *registration.Registration)) {
	t.store.each(func(reg *registration.Registration) {
		if staged, ok := t.staged[reg.ID()]; ok {
			fn(staged)
			return
		}
		fn(reg)
	})
	for _, id := range t.added {
		fn(t.staged[id])
	}
}

func (t *memTx) LockEvent(ctx context.Context, _ event.Kind) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("failed to lock event", err)
	}
	return nil
}

func (t *memTx) Insert(_ context.Context, reg *registration.Registration) (bool, error) {
	if _, exists := t.get(reg.ID()); exists {
		return false, nil
	}
	if reg.IsActive() {
		if _, dup := activeEmailOwner(t, reg.EventKind(), reg.Email()); dup {
			return false, infra.WrapRepoErr("active registration already exists for email", nil, infra.KindDuplicateKey)
		}
	}
	t.staged[reg.ID()] = clone(reg)
	t.added = append(t.added, reg.ID())
	return true, nil
}

func (t *memTx) GetForUpdate(_ context.Context, id string) (*registration.Registration, error) {
	return findByID(t, id)
}

func (t *memTx) Cancel(
	_ context.Context,
	id string,
	email registration.Email,
	cancelledAt time.Time,
	reason *string,
) (*registration.Registration, error) {
	current, ok := t.get(id)
	if !ok || current.Email() != email || !current.IsActive() {
		return nil, infra.WrapRepoErr("no active registration for id and email", nil, infra.KindNotFound)
	}

	next := clone(current)
	r := ""
	if reason != nil {
		r = *reason
	}
	if err := next.Cancel(cancelledAt, r); err != nil {
		return nil, infra.WrapRepoErr("no active registration for id and email", err, infra.KindNotFound)
	}
	t.staged[id] = next
	return clone(next), nil
}

func (t *memTx) Update(_ context.Context, reg *registration.Registration) error {
	if _, ok := t.get(reg.ID()); !ok {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	if reg.IsActive() {
		if owner, dup := activeEmailOwner(t, reg.EventKind(), reg.Email()); dup && owner != reg.ID() {
			return infra.WrapRepoErr("active registration already exists for email", nil, infra.KindDuplicateKey)
		}
	}
	t.staged[reg.ID()] = clone(reg)
	return nil
}

type txReads struct {
	tx *memTx
}

func (r txReads) Occupancy(_ context.Context, kind event.Kind, slotLabel string) (int, error) {
	return occupancy(r.tx, kind, slotLabel), nil
}

func (r txReads) ActiveEmailExists(_ context.Context, kind event.Kind, email registration.Email) (bool, error) {
	_, ok := activeEmailOwner(r.tx, kind, email)
	return ok, nil
}

func (r txReads) FindByID(_ context.Context, id string) (*registration.Registration, error) {
	return findByID(r.tx, id)
}
