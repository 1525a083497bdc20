package notes

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Note struct {
	ID                uuid.UUID      `json:"id"                gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID       uuid.UUID      `json:"workspaceId"       gorm:"column:workspace_id;type:uuid;not null"`
	ChannelID         *uuid.UUID     `json:"channelId"         gorm:"column:channel_id;type:uuid"`
	Title             string         `json:"title"             gorm:"column:title;type:text;not null"`
	Content           string         `json:"content"           gorm:"column:content;type:text;not null"`
	CreatedByMemberID uuid.UUID      `json:"createdByMemberId" gorm:"column:created_by_member_id;type:uuid;not null"`
	IsPinned          bool           `json:"isPinned"          gorm:"column:is_pinned;not null;default:false"`
	Tags              pq.StringArray `json:"tags"              gorm:"column:tags;type:text[]"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamp with time zone;not null;default:now()"`
}

func (n *Note) TableName() string {
	return "notes"
}

func (n *Note) Validate() error {
	if n.Title == "" {
		return errors.New("note title is required")
	}
	if n.Content == "" {
		return errors.New("note content is required")
	}
	return nil
}
