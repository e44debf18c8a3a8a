package memory

import (
	"context"
	"sort"
	"sync"

	"petconnect/internal/domain/stories"
)

type storyRepo struct {
	mu   sync.RWMutex
	byID map[string]stories.Story
}

func NewStoryRepo(seed []stories.Story) stories.Repository {
	r := &storyRepo{byID: make(map[string]stories.Story, len(seed))}
	for _, s := range seed {
		r.byID[s.ID] = s
	}
	return r
}

func (r *storyRepo) Update(ctx context.Context, s stories.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *storyRepo) List(ctx context.Context) ([]stories.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stories.Story, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
