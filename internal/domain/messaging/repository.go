package messaging

import "context"

type Repository interface {
	Create(ctx context.Context, c Conversation) error
	GetByID(ctx context.Context, id string) (Conversation, error)
	Update(ctx context.Context, c Conversation) error
	Delete(ctx context.Context, id string) error

	// List devuelve las conversaciones por actividad, más reciente primero.
	List(ctx context.Context) ([]Conversation, error)
}
