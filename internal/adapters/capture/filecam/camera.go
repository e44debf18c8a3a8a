// Package filecam simula la cámara sirviendo una imagen desde disco.
// Útil en dev y tests: mismo contrato que una cámara real, incluida la
// obligación de cerrar el stream.
package filecam

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"petconnect/internal/ports/capture"
)

type Camera struct {
	path string

	// open cuenta streams abiertos y sin cerrar; los tests lo usan para
	// detectar leaks.
	open atomic.Int64
}

func New(path string) *Camera {
	return &Camera{path: strings.TrimSpace(path)}
}

// OpenStreams devuelve cuántos streams siguen sin Close.
func (c *Camera) OpenStreams() int64 {
	return c.open.Load()
}

func (c *Camera) Open(ctx context.Context) (io.ReadCloser, error) {
	if c.path == "" {
		return nil, capture.ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, capture.ErrPermissionDenied
		}
		return nil, capture.ErrUnavailable
	}

	c.open.Add(1)
	return &stream{f: f, cam: c}, nil
}

type stream struct {
	f      *os.File
	cam    *Camera
	closed atomic.Bool
}

func (s *stream) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

func (s *stream) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.cam.open.Add(-1)
	return s.f.Close()
}
