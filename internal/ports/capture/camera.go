package capture

import (
	"context"
	"errors"
	"io"
)

var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrUnavailable      = errors.New("camera not available")
)

// Camera abre un stream de captura. Quien lo abre es responsable de
// cerrarlo en todos los caminos de salida; un stream abierto después de
// que su pantalla se cerró es un leak.
type Camera interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
