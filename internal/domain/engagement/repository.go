package engagement

import "context"

// Repository guarda el liked-set por usuario y por kind.
type Repository interface {
	Has(ctx context.Context, userID string, k Kind, itemID string) (bool, error)
	Add(ctx context.Context, userID string, k Kind, itemID string) error
	Remove(ctx context.Context, userID string, k Kind, itemID string) error
	ListLiked(ctx context.Context, userID string, k Kind) ([]string, error)
}
