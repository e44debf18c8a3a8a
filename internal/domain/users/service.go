package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"petconnect/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// AuthorRefresher propaga un cambio de nombre/avatar a los snapshots
// desnormalizados de otra colección (posts, reports, listings, stories).
// La interfaz vive aquí para evitar ciclos de imports entre módulos.
type AuthorRefresher interface {
	RefreshAuthor(ctx context.Context, userID, name, avatar string) error
}

type Service struct {
	repo       Repository
	refreshers []AuthorRefresher
	log        logger.Logger
	now        func() time.Time
}

// NewService recibe los refreshers ya construidos: users se cablea al final
// en el router, así que no hay dependencia circular de constructores.
func NewService(repo Repository, log logger.Logger, refreshers ...AuthorRefresher) *Service {
	return &Service{
		repo:       repo,
		refreshers: refreshers,
		log:        log,
		now:        time.Now,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name     *string
	Avatar   *string
	Bio      *string
	Location *string
	Email    *string
	Phone    *string
}

// UpdateProfile mergea los campos presentes. Si cambió nombre o avatar,
// corre la propagación batch sobre todas las colecciones registradas para
// que los snapshots no queden desfasados.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateInput) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}

	identityChanged := false

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return User{}, ErrInvalidInput
		}
		if name != u.Name {
			u.Name = name
			identityChanged = true
		}
	}
	if in.Avatar != nil {
		avatar := strings.TrimSpace(*in.Avatar)
		if avatar == "" {
			return User{}, ErrInvalidInput
		}
		if avatar != u.Avatar {
			u.Avatar = avatar
			identityChanged = true
		}
	}
	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Location != nil {
		u.Location = strings.TrimSpace(*in.Location)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}

	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}

	if identityChanged {
		s.propagateIdentity(ctx, u)
	}

	return u, nil
}

func (s *Service) propagateIdentity(ctx context.Context, u User) {
	for _, ref := range s.refreshers {
		// best-effort: un snapshot desfasado en una colección no debe
		// abortar la propagación en las demás
		if err := ref.RefreshAuthor(ctx, u.ID, u.Name, u.Avatar); err != nil {
			s.log.Warn("propagación de perfil falló", map[string]any{"user_id": u.ID, "err": err.Error()})
		}
	}
}

// ResetAccount repone la identidad seed del usuario (la "cuenta nueva"
// tras borrar cuenta). El logout y el reset de mascotas los orquesta el
// handler.
func (s *Service) ResetAccount(ctx context.Context, userID string) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.repo.Restore(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}
	s.propagateIdentity(ctx, u)
	return u, nil
}
