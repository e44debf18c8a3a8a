package reports

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
	PetName     string
	Status      string
	Location    string
	Date        string
	Image       string
	Breed       string
	Description string
}

func (s *Service) Create(ctx context.Context, author engagement.Author, in CreateInput) (Report, error) {
	petName := strings.TrimSpace(in.PetName)
	location := strings.TrimSpace(in.Location)

	if petName == "" || location == "" {
		return Report{}, ErrInvalidInput
	}

	status, ok := ParseStatus(strings.TrimSpace(in.Status))
	if !ok {
		return Report{}, ErrInvalidInput
	}

	rep := Report{
		ID:          uuid.NewString(),
		PetName:     petName,
		Status:      status,
		Location:    location,
		Date:        strings.TrimSpace(in.Date),
		Image:       strings.TrimSpace(in.Image),
		Breed:       strings.TrimSpace(in.Breed),
		Description: strings.TrimSpace(in.Description),
		Author:      &author,
		Likes:       0,
		Comments:    nil,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// List filtra por status cuando viene uno; la pantalla particiona por tab.
func (s *Service) List(ctx context.Context, status *Status) ([]Report, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return items, nil
	}

	out := make([]Report, 0, len(items))
	for _, rep := range items {
		if rep.Status == *status {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

// RefreshAuthor implementa users.AuthorRefresher.
func (s *Service) RefreshAuthor(ctx context.Context, userID, name, avatar string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, rep := range items {
		changed := false
		if rep.Author != nil && rep.Author.ID == userID {
			// copia para no mutar el puntero compartido con el repo
			a := *rep.Author
			a.Name = name
			a.Avatar = avatar
			rep.Author = &a
			changed = true
		}
		for i := range rep.Comments {
			if rep.Comments[i].Author.ID == userID {
				rep.Comments[i].Author.Name = name
				rep.Comments[i].Author.Avatar = avatar
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := s.repo.Update(ctx, rep); err != nil {
			return err
		}
	}
	return nil
}

// AdjustLikes implementa engagement.Target.
func (s *Service) AdjustLikes(ctx context.Context, itemID string, delta int) (int, error) {
	rep, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return 0, ErrNotFound
	}
	rep.Likes += delta
	if rep.Likes < 0 {
		rep.Likes = 0
	}
	if err := s.repo.Update(ctx, rep); err != nil {
		return 0, err
	}
	return rep.Likes, nil
}

// AppendComment implementa engagement.Target.
func (s *Service) AppendComment(ctx context.Context, itemID string, c engagement.Comment) error {
	rep, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return ErrNotFound
	}
	rep.Comments = append(rep.Comments, c)
	return s.repo.Update(ctx, rep)
}
