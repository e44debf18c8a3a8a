package pets

import "time"

// Pet pertenece a exactamente un usuario. Los posts del feed llevan un
// snapshot de la mascota (PetTag); borrar la mascota arrastra esos posts.
type Pet struct {
	ID          string
	OwnerUserID string

	Name   string
	Breed  string
	Avatar string
	Bio    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
