package places

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Place, error)
	Update(ctx context.Context, p Place) error
	List(ctx context.Context) ([]Place, error)
}
