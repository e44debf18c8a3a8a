package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petconnect/internal/domain/messaging"
)

type conversationRepo struct {
	mu   sync.RWMutex
	byID map[string]messaging.Conversation
}

func NewConversationRepo(seed []messaging.Conversation) messaging.Repository {
	r := &conversationRepo{byID: make(map[string]messaging.Conversation, len(seed))}
	for _, c := range seed {
		r.byID[c.ID] = c
	}
	return r
}

func (r *conversationRepo) Create(ctx context.Context, c messaging.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("conversation id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("conversation already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id string) (messaging.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return messaging.Conversation{}, ErrNotFound
	}
	return c, nil
}

func (r *conversationRepo) Update(ctx context.Context, c messaging.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *conversationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *conversationRepo) List(ctx context.Context) ([]messaging.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]messaging.Conversation, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}

	// La conversación con actividad más reciente arriba.
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out, nil
}
