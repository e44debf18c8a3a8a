package session

import "strings"

// Screen identifica la pantalla activa del router de vistas.
type Screen string

const (
	ScreenHome        Screen = "HOME"
	ScreenMap         Screen = "MAP"
	ScreenMessages    Screen = "MESSAGES"
	ScreenProfile     Screen = "PROFILE"
	ScreenEditProfile Screen = "EDIT_PROFILE"
	ScreenEditPet     Screen = "EDIT_PET"
	ScreenEditService Screen = "EDIT_SERVICE"
	ScreenPetDetail   Screen = "PET_DETAIL"
	ScreenNewGroup    Screen = "NEW_GROUP"
	ScreenChat        Screen = "CHAT"
)

func ParseScreen(s string) (Screen, bool) {
	switch Screen(strings.ToUpper(strings.TrimSpace(s))) {
	case ScreenHome, ScreenMap, ScreenMessages, ScreenProfile, ScreenEditProfile,
		ScreenEditPet, ScreenEditService, ScreenPetDetail, ScreenNewGroup, ScreenChat:
		return Screen(strings.ToUpper(strings.TrimSpace(s))), true
	default:
		return "", false
	}
}

// fallbackFor lista las pantallas que exigen una entidad de contexto y a
// dónde caer si el puntero falta. Una pantalla de detalle jamás se
// renderiza con sujeto nulo.
var fallbackFor = map[Screen]Screen{
	ScreenEditPet:     ScreenProfile,
	ScreenPetDetail:   ScreenProfile,
	ScreenEditService: ScreenProfile,
	ScreenChat:        ScreenMessages,
}

// State es el estado de navegación de un usuario: pantalla activa,
// punteros de contexto y flag del panel de notificaciones.
type State struct {
	UserID   string
	LoggedIn bool
	Screen   Screen

	SelectedPetID        string
	SelectedListingID    string
	ActiveConversationID string

	NotificationsOpen bool
}

func newState(userID string) State {
	return State{
		UserID: userID,
		Screen: ScreenHome,
	}
}
