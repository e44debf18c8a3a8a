package stories

import "context"

type Repository interface {
	Update(ctx context.Context, s Story) error

	// List devuelve las historias en orden de publicación, más nueva primero.
	List(ctx context.Context) ([]Story, error)
}
