package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrPetNotOwned  = errors.New("pet not owned by user")
)

// PetInfo es lo mínimo que el feed necesita saber de una mascota para
// armar el snapshot del post.
type PetInfo struct {
	ID     string
	Name   string
	Breed  string
	Avatar string
}

// PetDirectory resuelve una mascota del usuario actual. Se inyecta desde el
// router (adapter sobre pets.Service) para evitar ciclos de imports.
type PetDirectory interface {
	OwnedPet(ctx context.Context, ownerUserID, petID string) (PetInfo, error)
}

type Service struct {
	repo Repository
	pets PetDirectory
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, pets PetDirectory, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		log:  log,
		now:  time.Now,
	}
}

// Create valida que la mascota sea del autor; si no, rechaza con
// diagnóstico y deja el feed intacto. El post nuevo entra al frente con
// cero likes y sin comentarios.
func (s *Service) Create(ctx context.Context, author engagement.Author, caption, petID string) (Post, error) {
	caption = strings.TrimSpace(caption)
	petID = strings.TrimSpace(petID)

	if strings.TrimSpace(author.ID) == "" || caption == "" || petID == "" {
		return Post{}, ErrInvalidInput
	}

	pi, err := s.pets.OwnedPet(ctx, author.ID, petID)
	if err != nil {
		s.log.Warn("post rechazado: mascota no encontrada o ajena", map[string]any{"user_id": author.ID, "pet_id": petID})
		return Post{}, ErrPetNotOwned
	}

	id := uuid.NewString()
	p := Post{
		ID:     id,
		Author: author,
		Pet: PetTag{
			ID:     pi.ID,
			Name:   pi.Name,
			Breed:  pi.Breed,
			Avatar: pi.Avatar,
		},
		Image:     fmt.Sprintf("https://picsum.photos/seed/%s/600/600", id),
		Caption:   caption,
		Likes:     0,
		Comments:  nil,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Post, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

// RemoveByPet borra todos los posts etiquetados con la mascota (cascade de
// deletePet): después de esto ningún post referencia ese pet id.
func (s *Service) RemoveByPet(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrInvalidInput
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range items {
		if p.Pet.ID != petID {
			continue
		}
		if err := s.repo.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// RefreshPetTag propaga nombre/raza/avatar nuevos de la mascota a todos los
// posts que la etiquetan, para que el feed no muestre datos viejos.
func (s *Service) RefreshPetTag(ctx context.Context, petID, name, breed, avatar string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrInvalidInput
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range items {
		if p.Pet.ID != petID {
			continue
		}
		p.Pet.Name = name
		p.Pet.Breed = breed
		p.Pet.Avatar = avatar
		if err := s.repo.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RefreshAuthor implementa users.AuthorRefresher: actualiza el snapshot del
// autor en posts y en los comentarios que escribió.
func (s *Service) RefreshAuthor(ctx context.Context, userID, name, avatar string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range items {
		changed := false
		if p.Author.ID == userID {
			p.Author.Name = name
			p.Author.Avatar = avatar
			changed = true
		}
		for i := range p.Comments {
			if p.Comments[i].Author.ID == userID {
				p.Comments[i].Author.Name = name
				p.Comments[i].Author.Avatar = avatar
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := s.repo.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
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
