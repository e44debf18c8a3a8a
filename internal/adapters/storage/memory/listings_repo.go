package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petconnect/internal/domain/listings"
)

type listingRepo struct {
	mu   sync.RWMutex
	byID map[string]listings.Listing
}

func NewListingRepo(seed []listings.Listing) listings.Repository {
	r := &listingRepo{byID: make(map[string]listings.Listing, len(seed))}
	for _, l := range seed {
		r.byID[l.ID] = l
	}
	return r
}

func (r *listingRepo) Create(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("listing id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("listing already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *listingRepo) GetByID(ctx context.Context, id string) (listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return listings.Listing{}, ErrNotFound
	}
	return l, nil
}

func (r *listingRepo) Update(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[l.ID]; !exists {
		return ErrNotFound
	}
	r.byID[l.ID] = l
	return nil
}

func (r *listingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *listingRepo) List(ctx context.Context) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Listing, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
