package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petconnect/internal/domain/feed"
)

type postRepo struct {
	mu   sync.RWMutex
	byID map[string]feed.Post
}

func NewPostRepo(seed []feed.Post) feed.Repository {
	r := &postRepo{byID: make(map[string]feed.Post, len(seed))}
	for _, p := range seed {
		r.byID[p.ID] = p
	}
	return r
}

func (r *postRepo) Create(ctx context.Context, p feed.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("post id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("post already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id string) (feed.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return feed.Post{}, ErrNotFound
	}
	return p, nil
}

func (r *postRepo) Update(ctx context.Context, p feed.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *postRepo) List(ctx context.Context) ([]feed.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feed.Post, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Más nuevo primero: el post recién creado encabeza el feed.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
