package messaging

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
	dir  engagement.Directory
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, dir engagement.Directory, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		dir:  dir,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Conversation, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Conversation, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Conversation{}, ErrNotFound
	}
	return c, nil
}

// SendMessage agrega un mensaje con snapshot del remitente y pisa el
// preview y el marcador de actividad de la conversación, todo en el mismo
// update. Texto vacío (tras trim) => no-op con diagnóstico.
func (s *Service) SendMessage(ctx context.Context, userID, conversationID, text string) (Message, error) {
	userID = strings.TrimSpace(userID)
	conversationID = strings.TrimSpace(conversationID)
	text = strings.TrimSpace(text)

	if userID == "" || conversationID == "" {
		return Message{}, ErrInvalidInput
	}
	if text == "" {
		s.log.Debug("mensaje vacío ignorado", map[string]any{"conversation_id": conversationID})
		return Message{}, ErrInvalidInput
	}

	c, err := s.repo.GetByID(ctx, conversationID)
	if err != nil {
		return Message{}, ErrNotFound
	}

	author, err := s.dir.AuthorSnapshot(ctx, userID)
	if err != nil {
		return Message{}, ErrNotFound
	}

	m := Message{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		CreatedAt: s.now(),
	}

	c.Messages = append(c.Messages, m)
	c.LastMessage = text
	c.LastActivity = m.CreatedAt

	if err := s.repo.Update(ctx, c); err != nil {
		return Message{}, err
	}
	return m, nil
}

// CreateGroup resuelve los miembros contra el directorio de usuarios:
// ids desconocidos se descartan, el creador entra siempre y nadie entra
// dos veces. La conversación nueva arranca con el preview sintetizado.
func (s *Service) CreateGroup(ctx context.Context, creatorID, name, avatar string, memberIDs []string) (Conversation, error) {
	creatorID = strings.TrimSpace(creatorID)
	name = strings.TrimSpace(name)

	if creatorID == "" || name == "" {
		return Conversation{}, ErrInvalidInput
	}

	seen := map[string]struct{}{}
	members := make([]Member, 0, len(memberIDs)+1)

	addMember := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		author, err := s.dir.AuthorSnapshot(ctx, id)
		if err != nil {
			s.log.Warn("miembro desconocido descartado", map[string]any{"user_id": id})
			return
		}
		seen[id] = struct{}{}
		members = append(members, Member{ID: author.ID, Name: author.Name, Avatar: author.Avatar})
	}

	addMember(creatorID)
	for _, id := range memberIDs {
		addMember(id)
	}

	now := s.now()
	c := Conversation{
		ID:           uuid.NewString(),
		Name:         name,
		Avatar:       strings.TrimSpace(avatar),
		LastMessage:  "Group created",
		LastActivity: now,
		Unread:       0,
		IsGroup:      true,
		Members:      members,
		Messages:     nil,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Conversation{}, err
	}
	return c, nil
}

// AddMember es idempotente: si el usuario ya integra el grupo no se
// duplica. Lo usa el accept de invitaciones.
func (s *Service) AddMember(ctx context.Context, conversationID, userID string) error {
	conversationID = strings.TrimSpace(conversationID)
	userID = strings.TrimSpace(userID)
	if conversationID == "" || userID == "" {
		return ErrInvalidInput
	}

	c, err := s.repo.GetByID(ctx, conversationID)
	if err != nil {
		return ErrNotFound
	}
	if c.HasMember(userID) {
		return nil
	}

	author, err := s.dir.AuthorSnapshot(ctx, userID)
	if err != nil {
		return ErrNotFound
	}

	c.Members = append(c.Members, Member{ID: author.ID, Name: author.Name, Avatar: author.Avatar})
	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, conversationID string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(conversationID)); err != nil {
		return ErrNotFound
	}
	return nil
}

// MarkRead deja en cero el contador de no leídos.
func (s *Service) MarkRead(ctx context.Context, conversationID string) error {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(conversationID))
	if err != nil {
		return ErrNotFound
	}
	if c.Unread == 0 {
		return nil
	}
	c.Unread = 0
	return s.repo.Update(ctx, c)
}
