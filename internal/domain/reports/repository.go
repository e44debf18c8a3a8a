package reports

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	Update(ctx context.Context, r Report) error
	Delete(ctx context.Context, id string) error

	// List devuelve todos los reportes, más nuevo primero.
	List(ctx context.Context) ([]Report, error)
}
