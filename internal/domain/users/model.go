package users

import "time"

// User es el perfil de un usuario. Hay un único "usuario actual" por sesión;
// el resto son datos seed estáticos. Las mascotas viven en su propia
// colección (pets), referenciadas por OwnerUserID.
type User struct {
	ID     string
	Name   string
	Avatar string

	Bio      string
	Location string
	Email    string
	Phone    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
