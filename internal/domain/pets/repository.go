package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)

	// RestoreOwner repone las mascotas seed del dueño (reset de cuenta).
	RestoreOwner(ctx context.Context, ownerUserID string) error
}
