package engagement

import (
	"context"
	"errors"
	"strings"
	"time"

	"petconnect/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Target es la colección destino de un like/comentario.
// Lo implementan los services de feed, reports, listings y places.
type Target interface {
	// AdjustLikes suma delta (±1) al contador del item y devuelve el nuevo total.
	AdjustLikes(ctx context.Context, itemID string, delta int) (int, error)
	AppendComment(ctx context.Context, itemID string, c Comment) error
}

// Directory resuelve el snapshot de autor del usuario actual.
// Lo implementa users.Service.
type Directory interface {
	AuthorSnapshot(ctx context.Context, userID string) (Author, error)
}

type Service struct {
	repo    Repository
	targets map[Kind]Target
	dir     Directory
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, dir Directory, targets map[Kind]Target, log logger.Logger) *Service {
	return &Service{
		repo:    repo,
		targets: targets,
		dir:     dir,
		log:     log,
		now:     time.Now,
	}
}

// ToggleLike invierte la pertenencia del item al liked-set del usuario y
// ajusta el contador del item en lockstep: el contador cambia si y solo si
// la pertenencia cambia. Si el item no existe, no toca nada.
func (s *Service) ToggleLike(ctx context.Context, userID string, k Kind, itemID string) (liked bool, likes int, err error) {
	userID = strings.TrimSpace(userID)
	itemID = strings.TrimSpace(itemID)
	if userID == "" || itemID == "" {
		return false, 0, ErrInvalidInput
	}

	target, ok := s.targets[k]
	if !ok {
		s.log.Warn("toggle like sobre kind desconocido", map[string]any{"kind": string(k)})
		return false, 0, ErrUnknownKind
	}

	already, err := s.repo.Has(ctx, userID, k, itemID)
	if err != nil {
		return false, 0, err
	}

	delta := 1
	if already {
		delta = -1
	}

	// Primero el contador: si el item no existe, el set queda intacto.
	likes, err = target.AdjustLikes(ctx, itemID, delta)
	if err != nil {
		s.log.Warn("toggle like rechazado", map[string]any{"kind": string(k), "item_id": itemID, "err": err.Error()})
		return false, 0, ErrNotFound
	}

	if already {
		if err := s.repo.Remove(ctx, userID, k, itemID); err != nil {
			return false, 0, err
		}
		return false, likes, nil
	}
	if err := s.repo.Add(ctx, userID, k, itemID); err != nil {
		return false, 0, err
	}
	return true, likes, nil
}

// AddComment agrega un comentario con snapshot del usuario actual.
// Texto vacío (tras trim) => no-op con diagnóstico.
func (s *Service) AddComment(ctx context.Context, userID string, k Kind, itemID, text string) (Comment, error) {
	userID = strings.TrimSpace(userID)
	itemID = strings.TrimSpace(itemID)
	text = strings.TrimSpace(text)

	if userID == "" || itemID == "" {
		return Comment{}, ErrInvalidInput
	}
	if text == "" {
		s.log.Debug("comentario vacío ignorado", map[string]any{"kind": string(k), "item_id": itemID})
		return Comment{}, ErrInvalidInput
	}

	target, ok := s.targets[k]
	if !ok {
		return Comment{}, ErrUnknownKind
	}

	author, err := s.dir.AuthorSnapshot(ctx, userID)
	if err != nil {
		return Comment{}, ErrNotFound
	}

	c := Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		CreatedAt: s.now(),
	}

	if err := target.AppendComment(ctx, itemID, c); err != nil {
		s.log.Warn("comentario rechazado", map[string]any{"kind": string(k), "item_id": itemID, "err": err.Error()})
		return Comment{}, ErrNotFound
	}
	return c, nil
}

// LikedSet devuelve los ids marcados como liked por el usuario para un kind.
func (s *Service) LikedSet(ctx context.Context, userID string, k Kind) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	if _, ok := s.targets[k]; !ok {
		return nil, ErrUnknownKind
	}
	return s.repo.ListLiked(ctx, userID, k)
}
