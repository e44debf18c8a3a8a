package memory

import (
	"context"
	"sort"
	"sync"

	"petconnect/internal/domain/engagement"
)

type likeKey struct {
	userID string
	kind   engagement.Kind
}

type likeRepo struct {
	mu   sync.RWMutex
	sets map[likeKey]map[string]struct{}
}

func NewLikeRepo() engagement.Repository {
	return &likeRepo{sets: make(map[likeKey]map[string]struct{})}
}

func (r *likeRepo) Has(ctx context.Context, userID string, k engagement.Kind, itemID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[likeKey{userID, k}]
	if !ok {
		return false, nil
	}
	_, liked := set[itemID]
	return liked, nil
}

func (r *likeRepo) Add(ctx context.Context, userID string, k engagement.Kind, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{userID, k}
	set, ok := r.sets[key]
	if !ok {
		set = make(map[string]struct{})
		r.sets[key] = set
	}
	set[itemID] = struct{}{}
	return nil
}

func (r *likeRepo) Remove(ctx context.Context, userID string, k engagement.Kind, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.sets[likeKey{userID, k}]; ok {
		delete(set, itemID)
	}
	return nil
}

func (r *likeRepo) ListLiked(ctx context.Context, userID string, k engagement.Kind) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.sets[likeKey{userID, k}]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
