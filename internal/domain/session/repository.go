package session

import "context"

type Repository interface {
	// Get devuelve el estado del usuario o ErrNoState si nunca navegó.
	Get(ctx context.Context, userID string) (State, error)
	Put(ctx context.Context, s State) error
}
