package places

import "petconnect/internal/domain/engagement"

// Place es un lugar pet-friendly o un negocio de servicios del mapa.
// Solo datos seed: no se crean por usuario.
type Place struct {
	ID       string
	Name     string
	Category string
	Address  string
	Distance string // opaco, texto de display
	Image    string

	Likes    int
	Comments []engagement.Comment

	// BusinessService separa el tab de negocios del de lugares amigables.
	BusinessService bool
}
