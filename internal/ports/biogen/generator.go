package biogen

import (
	"context"
	"errors"
)

var ErrGenerationFailed = errors.New("failed to communicate with the bio generator")

// Generator produce una bio corta para una mascota a partir de nombre y raza.
// Colaborador externo opaco: devuelve texto o falla, nunca toca estado.
type Generator interface {
	Generate(ctx context.Context, petName, petBreed string) (string, error)
}
