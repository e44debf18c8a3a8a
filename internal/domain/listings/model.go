package listings

import (
	"time"

	"petconnect/internal/domain/engagement"
)

// Type distingue productos de servicios en el marketplace.
type Type string

const (
	TypeService Type = "Service"
	TypeProduct Type = "Product"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeService, TypeProduct:
		return Type(s), true
	default:
		return "", false
	}
}

// Listing es una publicación del marketplace (el "Service" de la app).
// Solo el dueño puede editarla o borrarla.
type Listing struct {
	ID    string
	Owner engagement.Author

	Name        string
	Description string
	Price       string // opaco, texto de display
	Type        Type
	Image       string
	Address     string

	Likes    int
	Comments []engagement.Comment

	CreatedAt time.Time
	UpdatedAt time.Time
}
