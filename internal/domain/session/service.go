package session

import (
	"context"
	"errors"
	"strings"

	"petconnect/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoState lo devuelven los repos cuando el usuario no tiene estado.
	ErrNoState = errors.New("no session state")
)

// Inbox marca todas las notificaciones como leídas al abrir el panel.
// Lo implementa notifications.Service.
type Inbox interface {
	MarkAllRead(ctx context.Context) (int, error)
}

type Service struct {
	repo  Repository
	inbox Inbox
	log   logger.Logger
}

func NewService(repo Repository, inbox Inbox, log logger.Logger) *Service {
	return &Service{
		repo:  repo,
		inbox: inbox,
		log:   log,
	}
}

func (s *Service) current(ctx context.Context, userID string) (State, error) {
	st, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoState) {
			return newState(userID), nil
		}
		return State{}, err
	}
	return st, nil
}

func (s *Service) Current(ctx context.Context, userID string) (State, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return State{}, ErrInvalidInput
	}
	return s.current(ctx, userID)
}

func (s *Service) Login(ctx context.Context, userID string) (State, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return State{}, ErrInvalidInput
	}

	st := newState(userID)
	st.LoggedIn = true
	if err := s.repo.Put(ctx, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Logout vuelve al estado pre-autenticación: Home, sin punteros.
func (s *Service) Logout(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidInput
	}
	return s.repo.Put(ctx, newState(userID))
}

// Navigate aplica la transición de pantalla. Las pantallas de detalle
// fijan su puntero de contexto con contextID; si al final el puntero
// requerido falta, se cae a la pantalla de fallback en vez de renderizar
// un detalle sin sujeto.
func (s *Service) Navigate(ctx context.Context, userID string, screen Screen, contextID string) (State, error) {
	userID = strings.TrimSpace(userID)
	contextID = strings.TrimSpace(contextID)
	if userID == "" {
		return State{}, ErrInvalidInput
	}

	st, err := s.current(ctx, userID)
	if err != nil {
		return State{}, err
	}

	switch screen {
	case ScreenEditPet, ScreenPetDetail:
		if contextID != "" {
			st.SelectedPetID = contextID
		}
	case ScreenEditService:
		if contextID != "" {
			st.SelectedListingID = contextID
		}
	case ScreenChat:
		if contextID != "" {
			st.ActiveConversationID = contextID
		}
	}

	st.Screen = screen

	if fb, guarded := fallbackFor[screen]; guarded && s.missingContext(st, screen) {
		s.log.Warn("pantalla de detalle sin contexto, redirigiendo", map[string]any{
			"user_id":  userID,
			"screen":   string(screen),
			"fallback": string(fb),
		})
		st.Screen = fb
	}

	if err := s.repo.Put(ctx, st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (s *Service) missingContext(st State, screen Screen) bool {
	switch screen {
	case ScreenEditPet, ScreenPetDetail:
		return st.SelectedPetID == ""
	case ScreenEditService:
		return st.SelectedListingID == ""
	case ScreenChat:
		return st.ActiveConversationID == ""
	default:
		return false
	}
}

// TogglePanel invierte la visibilidad del panel de notificaciones.
// Abrirlo marca todo leído; cerrarlo no marca nada (monótono).
func (s *Service) TogglePanel(ctx context.Context, userID string) (State, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return State{}, ErrInvalidInput
	}

	st, err := s.current(ctx, userID)
	if err != nil {
		return State{}, err
	}

	st.NotificationsOpen = !st.NotificationsOpen

	if st.NotificationsOpen {
		if _, err := s.inbox.MarkAllRead(ctx); err != nil {
			return State{}, err
		}
	}

	if err := s.repo.Put(ctx, st); err != nil {
		return State{}, err
	}
	return st, nil
}
