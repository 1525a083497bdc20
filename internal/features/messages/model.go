package messages

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message is a post in a channel, a direct conversation, or a thread.
// Top-level messages carry exactly one of ChannelID/ConversationID;
// replies inherit the parent's context.
type Message struct {
	ID              uuid.UUID  `json:"id"              gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID     uuid.UUID  `json:"workspaceId"     gorm:"column:workspace_id;type:uuid;not null"`
	MemberID        uuid.UUID  `json:"memberId"        gorm:"column:member_id;type:uuid;not null"`
	ChannelID       *uuid.UUID `json:"channelId"       gorm:"column:channel_id;type:uuid"`
	ConversationID  *uuid.UUID `json:"conversationId"  gorm:"column:conversation_id;type:uuid"`
	ParentMessageID *uuid.UUID `json:"parentMessageId" gorm:"column:parent_message_id;type:uuid"`

	Body        string     `json:"body"        gorm:"column:body;type:text;not null"`
	ImageFileID *uuid.UUID `json:"imageFileId" gorm:"column:image_file_id;type:uuid"`

	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
	UpdatedAt *time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamp with time zone"`
}

func (m *Message) TableName() string {
	return "messages"
}

func (m *Message) Validate() error {
	if m.Body == "" {
		return errors.New("message body is required")
	}

	if m.ParentMessageID == nil {
		hasChannel := m.ChannelID != nil
		hasConversation := m.ConversationID != nil

		if hasChannel == hasConversation {
			return errors.New("message needs exactly one of channel or conversation")
		}
	}

	return nil
}

// Conversation is a direct-message context between two members of the
// same workspace.
type Conversation struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;type:uuid;not null"`
	MemberOneID uuid.UUID `json:"memberOneId" gorm:"column:member_one_id;type:uuid;not null"`
	MemberTwoID uuid.UUID `json:"memberTwoId" gorm:"column:member_two_id;type:uuid;not null"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
}

func (c *Conversation) TableName() string {
	return "conversations"
}

func (c *Conversation) HasMember(memberID uuid.UUID) bool {
	return c.MemberOneID == memberID || c.MemberTwoID == memberID
}
