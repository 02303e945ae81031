// Package memory keeps the catalog in process memory. It is the default
// source and needs no external services.
package memory

import (
	"context"
	"sort"
	"sync"

	"varlife/pkg/models"
	"varlife/storage"
)

type Store struct {
	txMu sync.Mutex

	mu     sync.RWMutex
	rides  map[string]*models.RideOption
	areas  []*models.Area
	nextID int64
}

// New returns a store seeded with the default catalog.
func New() *Store {
	s := &Store{rides: make(map[string]*models.RideOption)}
	for _, r := range models.DefaultRideOptions() {
		s.rides[r.ID] = r
	}
	for _, a := range models.DefaultAreas() {
		s.areas = append(s.areas, a)
		s.nextID = a.ID
	}
	return s
}

func (s *Store) RideOption() storage.IRideOptionStorage { return rideOptionRepo{s} }
func (s *Store) Area() storage.IAreaStorage             { return areaRepo{s} }
func (s *Store) Close()                                 {}

// WithTx restores the catalog as it was before fn if fn fails. Transactions
// are serialized with each other but not with plain repository calls.
func (s *Store) WithTx(ctx context.Context, fn func(tx storage.ICatalog) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	rides := make(map[string]*models.RideOption, len(s.rides))
	for id, r := range s.rides {
		rides[id] = r
	}
	areas := append([]*models.Area(nil), s.areas...)
	nextID := s.nextID
	s.mu.RUnlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.rides, s.areas, s.nextID = rides, areas, nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

type rideOptionRepo struct{ s *Store }

func (r rideOptionRepo) GetAll(ctx context.Context) ([]*models.RideOption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.RideOption, 0, len(r.s.rides))
	for _, ride := range r.s.rides {
		cp := *ride
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position == out[j].Position {
			return out[i].ID < out[j].ID
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (r rideOptionRepo) GetByID(ctx context.Context, id string) (*models.RideOption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ride, ok := r.s.rides[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *ride
	return &cp, nil
}

func (r rideOptionRepo) Create(ctx context.Context, ride *models.RideOption) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *ride
	r.s.rides[ride.ID] = &cp
	return nil
}

func (r rideOptionRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rides = make(map[string]*models.RideOption)
	return nil
}

type areaRepo struct{ s *Store }

func (r areaRepo) GetAll(ctx context.Context) ([]*models.Area, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Area, 0, len(r.s.areas))
	for _, a := range r.s.areas {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r areaRepo) Create(ctx context.Context, name string) (*models.Area, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextID++
	a := &models.Area{ID: r.s.nextID, Name: name}
	r.s.areas = append(r.s.areas, a)
	cp := *a
	return &cp, nil
}

func (r areaRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.areas = nil
	return nil
}
