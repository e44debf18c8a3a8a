package memory

import (
	"context"
	"sync"

	"petconnect/internal/domain/session"
)

type sessionRepo struct {
	mu       sync.RWMutex
	byUserID map[string]session.State
}

func NewSessionRepo() session.Repository {
	return &sessionRepo{byUserID: make(map[string]session.State)}
}

func (r *sessionRepo) Get(ctx context.Context, userID string) (session.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.byUserID[userID]
	if !ok {
		return session.State{}, session.ErrNoState
	}
	return st, nil
}

func (r *sessionRepo) Put(ctx context.Context, s session.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUserID[s.UserID] = s
	return nil
}
