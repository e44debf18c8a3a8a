package messaging

import (
	"time"

	"petconnect/internal/domain/engagement"
)

// Message es append-only dentro de una conversación.
type Message struct {
	ID        string
	Author    engagement.Author
	Text      string
	CreatedAt time.Time
}

// Member es el snapshot de un integrante de la conversación.
type Member struct {
	ID     string
	Name   string
	Avatar string
}

// Conversation directa (seed) o grupal (creada por el usuario).
// LastMessage y LastActivity se pisan con cada mensaje nuevo.
type Conversation struct {
	ID     string
	Name   string
	Avatar string

	LastMessage  string
	LastActivity time.Time
	Unread       int

	IsGroup  bool
	Members  []Member
	Messages []Message

	CreatedAt time.Time
}

// HasMember reporta si el usuario ya integra la conversación.
func (c Conversation) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
