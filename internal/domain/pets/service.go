package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"petconnect/internal/platform/logger"
	"petconnect/internal/ports/biogen"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrBioUnavailable = errors.New("bio generation unavailable")
)

type Service struct {
	repo Repository
	gen  biogen.Generator // puede ser nil (sin API key)
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, gen biogen.Generator, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		gen:  gen,
		log:  log,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name   string
	Breed  string
	Avatar string
	Bio    string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)

	if ownerUserID == "" || name == "" || breed == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Breed:       breed,
		Avatar:      strings.TrimSpace(in.Avatar),
		Bio:         strings.TrimSpace(in.Bio),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name   *string
	Breed  *string
	Avatar *string
	Bio    *string
}

// Update solo lo puede hacer el dueño. El cascade del snapshot hacia el
// feed lo orquesta el handler con el resultado.
func (s *Service) Update(ctx context.Context, petID, actorUserID string, in UpdateInput) (Pet, error) {
	petID = strings.TrimSpace(petID)
	actorUserID = strings.TrimSpace(actorUserID)
	if petID == "" || actorUserID == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	if p.OwnerUserID != actorUserID {
		return Pet{}, ErrForbidden
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Breed != nil {
		breed := strings.TrimSpace(*in.Breed)
		if breed == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Breed = breed
	}
	if in.Avatar != nil {
		p.Avatar = strings.TrimSpace(*in.Avatar)
	}
	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, petID, actorUserID string) error {
	petID = strings.TrimSpace(petID)
	actorUserID = strings.TrimSpace(actorUserID)
	if petID == "" || actorUserID == "" {
		return ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return ErrNotFound
	}
	if p.OwnerUserID != actorUserID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, petID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ResetOwner(ctx context.Context, ownerUserID string) error {
	return s.repo.RestoreOwner(ctx, strings.TrimSpace(ownerUserID))
}

// SuggestBio pide una bio al generador externo. Falla con un error genérico
// y sin tocar estado; la mascota ni siquiera tiene que existir todavía
// (la pantalla de alta genera antes de crear).
func (s *Service) SuggestBio(ctx context.Context, petName, petBreed string) (string, error) {
	petName = strings.TrimSpace(petName)
	petBreed = strings.TrimSpace(petBreed)
	if petName == "" || petBreed == "" {
		return "", ErrInvalidInput
	}
	if s.gen == nil {
		return "", ErrBioUnavailable
	}

	bio, err := s.gen.Generate(ctx, petName, petBreed)
	if err != nil {
		s.log.Warn("generación de bio falló", map[string]any{"pet": petName, "err": err.Error()})
		return "", ErrBioUnavailable
	}

	bio = strings.TrimSpace(bio)
	if bio == "" {
		return "", ErrBioUnavailable
	}
	return bio, nil
}
