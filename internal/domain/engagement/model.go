package engagement

import (
	"errors"
	"strings"
	"time"
)

// Kind identifica la colección sobre la que aplica un like o comentario.
// El dispatch por Kind se resuelve al construir el Service (mapa de targets),
// no con strings sueltos en runtime.
type Kind string

const (
	KindPost    Kind = "post"
	KindReport  Kind = "report"
	KindListing Kind = "listing"
	KindPlace   Kind = "place"
)

var ErrUnknownKind = errors.New("unknown kind")

// ParseKind valida el kind que llega por HTTP. Es el único punto donde
// un kind desconocido puede aparecer.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindPost:
		return KindPost, nil
	case KindReport:
		return KindReport, nil
	case KindListing:
		return KindListing, nil
	case KindPlace:
		return KindPlace, nil
	default:
		return "", ErrUnknownKind
	}
}

// Author es el snapshot desnormalizado de un usuario que se incrusta en
// posts, comentarios, historias y mensajes al momento de crearlos.
// No es una referencia viva: se propaga en batch cuando cambia el perfil.
type Author struct {
	ID     string
	Name   string
	Avatar string
}

// Comment pertenece a exactamente una entidad (post/report/listing/place).
// Append-only.
type Comment struct {
	ID        string
	Author    Author
	Text      string
	CreatedAt time.Time
}
