package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Description string
	Price       string
	Type        string
	Image       string
	Address     string
}

func (s *Service) Create(ctx context.Context, owner engagement.Author, in CreateInput) (Listing, error) {
	name := strings.TrimSpace(in.Name)
	if strings.TrimSpace(owner.ID) == "" || name == "" {
		return Listing{}, ErrInvalidInput
	}

	t, ok := ParseType(strings.TrimSpace(in.Type))
	if !ok {
		return Listing{}, ErrInvalidInput
	}

	now := s.now()
	l := Listing{
		ID:          uuid.NewString(),
		Owner:       owner,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       strings.TrimSpace(in.Price),
		Type:        t,
		Image:       strings.TrimSpace(in.Image),
		Address:     strings.TrimSpace(in.Address),
		Likes:       0,
		Comments:    nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string
	Description *string
	Price       *string
	Type        *string
	Image       *string
	Address     *string
}

// Update re-verifica ownership en la capa de servicio, no confía en la
// precondición de la pantalla.
func (s *Service) Update(ctx context.Context, listingID, actorUserID string, in UpdateInput) (Listing, error) {
	listingID = strings.TrimSpace(listingID)
	actorUserID = strings.TrimSpace(actorUserID)
	if listingID == "" || actorUserID == "" {
		return Listing{}, ErrInvalidInput
	}

	l, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return Listing{}, ErrNotFound
	}
	if l.Owner.ID != actorUserID {
		return Listing{}, ErrForbidden
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Listing{}, ErrInvalidInput
		}
		l.Name = name
	}
	if in.Description != nil {
		l.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		l.Price = strings.TrimSpace(*in.Price)
	}
	if in.Type != nil {
		t, ok := ParseType(strings.TrimSpace(*in.Type))
		if !ok {
			return Listing{}, ErrInvalidInput
		}
		l.Type = t
	}
	if in.Image != nil {
		l.Image = strings.TrimSpace(*in.Image)
	}
	if in.Address != nil {
		l.Address = strings.TrimSpace(*in.Address)
	}

	l.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, listingID, actorUserID string) error {
	listingID = strings.TrimSpace(listingID)
	actorUserID = strings.TrimSpace(actorUserID)
	if listingID == "" || actorUserID == "" {
		return ErrInvalidInput
	}

	l, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return ErrNotFound
	}
	if l.Owner.ID != actorUserID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, listingID)
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Listing, error) {
	l, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Listing{}, ErrNotFound
	}
	return l, nil
}

// RefreshAuthor implementa users.AuthorRefresher.
func (s *Service) RefreshAuthor(ctx context.Context, userID, name, avatar string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, l := range items {
		changed := false
		if l.Owner.ID == userID {
			l.Owner.Name = name
			l.Owner.Avatar = avatar
			changed = true
		}
		for i := range l.Comments {
			if l.Comments[i].Author.ID == userID {
				l.Comments[i].Author.Name = name
				l.Comments[i].Author.Avatar = avatar
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := s.repo.Update(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// AdjustLikes implementa engagement.Target.
func (s *Service) AdjustLikes(ctx context.Context, itemID string, delta int) (int, error) {
	l, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return 0, ErrNotFound
	}
	l.Likes += delta
	if l.Likes < 0 {
		l.Likes = 0
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return 0, err
	}
	return l.Likes, nil
}

// AppendComment implementa engagement.Target.
func (s *Service) AppendComment(ctx context.Context, itemID string, c engagement.Comment) error {
	l, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return ErrNotFound
	}
	l.Comments = append(l.Comments, c)
	return s.repo.Update(ctx, l)
}
