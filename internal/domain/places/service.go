package places

import (
	"context"
	"errors"

	"petconnect/internal/domain/engagement"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List filtra por el flag de negocio cuando viene; la pantalla de mapa
// particiona por tab.
func (s *Service) List(ctx context.Context, business *bool) ([]Place, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return items, nil
	}

	out := make([]Place, 0, len(items))
	for _, p := range items {
		if p.BusinessService == *business {
			out = append(out, p)
		}
	}
	return out, nil
}

// AdjustLikes implementa engagement.Target.
func (s *Service) AdjustLikes(ctx context.Context, itemID string, delta int) (int, error) {
	p, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return 0, ErrNotFound
	}
	p.Likes += delta
	if p.Likes < 0 {
		p.Likes = 0
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return 0, err
	}
	return p.Likes, nil
}

// AppendComment implementa engagement.Target.
func (s *Service) AppendComment(ctx context.Context, itemID string, c engagement.Comment) error {
	p, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return ErrNotFound
	}
	p.Comments = append(p.Comments, c)
	return s.repo.Update(ctx, p)
}
