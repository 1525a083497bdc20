package channels

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Channel is a named message stream scoped to a workspace.
type Channel struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;type:uuid;not null"`
	Name        string    `json:"name"        gorm:"column:name;type:text;not null"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamp with time zone;not null;default:now()"`
}

func (c *Channel) TableName() string {
	return "channels"
}

func (c *Channel) Validate() error {
	if c.Name == "" {
		return errors.New("channel name is required")
	}
	return nil
}
