package memory

import (
	"context"
	"sort"
	"sync"

	"petconnect/internal/domain/places"
)

type placeRepo struct {
	mu   sync.RWMutex
	byID map[string]places.Place
}

func NewPlaceRepo(seed []places.Place) places.Repository {
	r := &placeRepo{byID: make(map[string]places.Place, len(seed))}
	for _, p := range seed {
		r.byID[p.ID] = p
	}
	return r
}

func (r *placeRepo) GetByID(ctx context.Context, id string) (places.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return places.Place{}, ErrNotFound
	}
	return p, nil
}

func (r *placeRepo) Update(ctx context.Context, p places.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *placeRepo) List(ctx context.Context) ([]places.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]places.Place, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden estable por id (los lugares son seed, no tienen timestamps)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
