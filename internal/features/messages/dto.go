package messages

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequestDTO struct {
	Body            string     `json:"body"            binding:"required"`
	ChannelID       *uuid.UUID `json:"channelId"`
	ConversationID  *uuid.UUID `json:"conversationId"`
	ParentMessageID *uuid.UUID `json:"parentMessageId"`
	ImageFileID     *uuid.UUID `json:"imageFileId"`
}

type UpdateMessageRequestDTO struct {
	Body string `json:"body" binding:"required"`
}

type CreateConversationRequestDTO struct {
	WorkspaceID uuid.UUID `json:"workspaceId" binding:"required"`
	MemberID    uuid.UUID `json:"memberId"    binding:"required"`
}

// MessageResponseDTO is the joined view of a message with its author
// resolved for display and, for top-level messages, its reply count.
type MessageResponseDTO struct {
	ID              uuid.UUID  `json:"id"              gorm:"column:id"`
	WorkspaceID     uuid.UUID  `json:"workspaceId"     gorm:"column:workspace_id"`
	MemberID        uuid.UUID  `json:"memberId"        gorm:"column:member_id"`
	ChannelID       *uuid.UUID `json:"channelId"       gorm:"column:channel_id"`
	ConversationID  *uuid.UUID `json:"conversationId"  gorm:"column:conversation_id"`
	ParentMessageID *uuid.UUID `json:"parentMessageId" gorm:"column:parent_message_id"`
	Body            string     `json:"body"            gorm:"column:body"`
	ImageFileID     *uuid.UUID `json:"imageFileId"     gorm:"column:image_file_id"`
	CreatedAt       time.Time  `json:"createdAt"       gorm:"column:created_at"`
	UpdatedAt       *time.Time `json:"updatedAt"       gorm:"column:updated_at"`

	// Author fields are null when the member was removed after posting.
	AuthorName      *string `json:"authorName"      gorm:"column:author_name"`
	AuthorEmail     *string `json:"authorEmail"     gorm:"column:author_email"`
	AuthorAvatarURL *string `json:"authorAvatarUrl" gorm:"column:author_avatar_url"`
	ReplyCount      int64   `json:"replyCount"      gorm:"column:reply_count"`

	// Populated at read time when the message has an image
	ImageURL *string `json:"imageUrl,omitempty" gorm:"-"`
}

type ListMessagesResponseDTO struct {
	Messages []*MessageResponseDTO `json:"messages"`
}
