package notifications

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Notification, error)
	Update(ctx context.Context, n Notification) error
	Delete(ctx context.Context, id string) error

	// List devuelve las notificaciones más nuevas primero.
	List(ctx context.Context) ([]Notification, error)
}
