package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"petconnect/internal/domain/users"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User

	// seed guarda la versión original para Restore (reset de cuenta).
	seed map[string]users.User
}

func NewUserRepo(seed []users.User) users.Repository {
	r := &userRepo{
		byID: make(map[string]users.User, len(seed)),
		seed: make(map[string]users.User, len(seed)),
	}
	for _, u := range seed {
		r.byID[u.ID] = u
		r.seed[u.ID] = u
	}
	return r
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return ErrNotFound
	}
	if _, exists := r.byID[u.ID]; !exists {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *userRepo) Restore(ctx context.Context, id string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orig, ok := r.seed[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	r.byID[id] = orig
	return orig, nil
}
