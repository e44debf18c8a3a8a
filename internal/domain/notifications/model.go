package notifications

import (
	"time"

	"petconnect/internal/domain/engagement"
)

type Type string

const (
	TypeNewMessage    Type = "NEW_MESSAGE"
	TypeLostPetUpdate Type = "LOST_PET_UPDATE"
	TypeNewFollower   Type = "NEW_FOLLOWER"
	TypePostLike      Type = "POST_LIKE"
	TypeGroupInvite   Type = "GROUP_INVITE"
)

// Notification del panel. Las de tipo GroupInvite llevan GroupID/GroupName
// y desaparecen al aceptar o rechazar; el resto solo se marca leída.
type Notification struct {
	ID        string
	Type      Type
	Text      string
	IsRead    bool
	CreatedAt time.Time

	RelatedUser *engagement.Author

	GroupID   string
	GroupName string
}
