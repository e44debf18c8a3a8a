package share

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("sharing not available")

type Payload struct {
	Title string
	Text  string
	URL   string
}

// Sharer publica un payload en la capacidad de compartir de la plataforma.
// Si no hay capacidad configurada debe devolver ErrUnavailable para que el
// caller muestre un aviso de fallback en vez de fallar en silencio.
type Sharer interface {
	Share(ctx context.Context, p Payload) error
}
