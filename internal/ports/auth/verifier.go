package auth

import "context"

// AuthVerifier valida el bearer token que manda el cliente y devuelve
// los claims del usuario. Sin verifier configurado el middleware corre
// en modo dev (header X-Debug-User-ID).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
