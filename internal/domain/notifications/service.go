package notifications

import (
	"context"
	"errors"
	"strings"

	"petconnect/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// GroupMembers agrega un usuario a un grupo (idempotente). Lo implementa
// messaging.Service; la interfaz vive aquí para evitar ciclos de imports.
type GroupMembers interface {
	AddMember(ctx context.Context, conversationID, userID string) error
}

type Service struct {
	repo   Repository
	groups GroupMembers
	log    logger.Logger
}

func NewService(repo Repository, groups GroupMembers, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		groups: groups,
		log:    log,
	}
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAllRead es monótono: marcar dos veces no cambia nada más.
// Devuelve cuántas notificaciones pasaron de no leídas a leídas.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, n := range items {
		if n.IsRead {
			continue
		}
		n.IsRead = true
		if err := s.repo.Update(ctx, n); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

// AcceptInvite suma al usuario al grupo de la invitación (sin duplicarlo)
// y recién entonces borra la notificación. Una invitación sin group id se
// rechaza con diagnóstico y queda intacta.
func (s *Service) AcceptInvite(ctx context.Context, notificationID, userID string) error {
	notificationID = strings.TrimSpace(notificationID)
	userID = strings.TrimSpace(userID)
	if notificationID == "" || userID == "" {
		return ErrInvalidInput
	}

	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return ErrNotFound
	}
	if n.Type != TypeGroupInvite {
		return ErrInvalidInput
	}
	if strings.TrimSpace(n.GroupID) == "" {
		s.log.Warn("invitación sin group id, accept ignorado", map[string]any{"notification_id": n.ID})
		return ErrInvalidInput
	}

	if err := s.groups.AddMember(ctx, n.GroupID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, n.ID)
}

// RejectInvite solo borra la notificación.
func (s *Service) RejectInvite(ctx context.Context, notificationID string) error {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return ErrInvalidInput
	}

	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return ErrNotFound
	}
	if n.Type != TypeGroupInvite {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, n.ID)
}
