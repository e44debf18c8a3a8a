package stories

import (
	"time"

	"petconnect/internal/domain/engagement"
)

// DisplayDuration es lo que una historia queda en pantalla antes del
// auto-dismiss.
const DisplayDuration = 5 * time.Second

// Story es efímera y solo de display: datos seed, sin operación de borrado.
type Story struct {
	ID        string
	Author    engagement.Author
	Image     string
	CreatedAt time.Time
}
