package feed

import (
	"time"

	"petconnect/internal/domain/engagement"
)

// PetTag es el snapshot de la mascota etiquetada en un post.
// Se mantiene consistente por cascade cuando la mascota cambia.
type PetTag struct {
	ID     string
	Name   string
	Breed  string
	Avatar string
}

// Post del feed, ordenado de más nuevo a más viejo.
type Post struct {
	ID      string
	Author  engagement.Author
	Pet     PetTag
	Image   string
	Caption string

	Likes    int
	Comments []engagement.Comment

	CreatedAt time.Time
}
