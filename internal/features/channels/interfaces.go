package channels

import "github.com/google/uuid"

type ChannelDeletionListener interface {
	OnBeforeChannelDeletion(channelID uuid.UUID) error
}
