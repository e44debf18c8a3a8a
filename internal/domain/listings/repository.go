package listings

import "context"

type Repository interface {
	Create(ctx context.Context, l Listing) error
	GetByID(ctx context.Context, id string) (Listing, error)
	Update(ctx context.Context, l Listing) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Listing, error)
}
