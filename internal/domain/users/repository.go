package users

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error

	// Restore repone la versión seed del usuario (borrar cuenta = reset).
	Restore(ctx context.Context, id string) (User, error)
}
