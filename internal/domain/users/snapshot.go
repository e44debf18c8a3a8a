package users

import (
	"context"

	"petconnect/internal/domain/engagement"
)

// AuthorSnapshot implementa engagement.Directory.
// Expone el snapshot (id, nombre, avatar) sin la lista de mascotas,
// que es lo único que se incrusta en posts/comentarios/mensajes.
func (s *Service) AuthorSnapshot(ctx context.Context, userID string) (engagement.Author, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return engagement.Author{}, err
	}
	return engagement.Author{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
	}, nil
}
