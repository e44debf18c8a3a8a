package reports

import (
	"time"

	"petconnect/internal/domain/engagement"
)

// Status de un reporte. Inmutable después de la creación: no existe
// operación de transición (un Lost no pasa a Found solo).
type Status string

const (
	StatusLost     Status = "Lost"
	StatusFound    Status = "Found"
	StatusAdoption Status = "Adoption"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusLost, StatusFound, StatusAdoption:
		return Status(s), true
	default:
		return "", false
	}
}

// Report de mascota perdida / encontrada / en adopción.
// Author es opcional: los reportes seed de terceros pueden no traerlo.
type Report struct {
	ID          string
	PetName     string
	Status      Status
	Location    string
	Date        string // opaco, texto de display
	Image       string
	Breed       string
	Description string

	Author *engagement.Author

	Likes    int
	Comments []engagement.Comment

	CreatedAt time.Time
}
