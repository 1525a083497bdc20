package rooms

import (
	"github.com/google/uuid"
)

type CreateRoomRequestDTO struct {
	WorkspaceID uuid.UUID `json:"workspaceId" binding:"required"`
	Name        string    `json:"name"        binding:"required,min=1,max=255"`
	Topic       string    `json:"topic"       binding:"required,min=1,max=255"`
	Description *string   `json:"description"`
	IsPrivate   bool      `json:"isPrivate"`
	MaxMembers  *int      `json:"maxMembers"`
}

type SendRoomMessageRequestDTO struct {
	Body            string     `json:"body"            binding:"required,min=1"`
	ImageFileID     *uuid.UUID `json:"imageFileId"`
	ParentMessageID *uuid.UUID `json:"parentMessageId"`
}

type RoomResponseDTO struct {
	DiscussionRoom

	MemberCount int       `json:"memberCount" gorm:"column:member_count"`
	IsMember    bool      `json:"isMember"    gorm:"column:is_member"`
	IsMuted     bool      `json:"isMuted"     gorm:"column:is_muted"`
	UserRole    *RoomRole `json:"userRole"    gorm:"column:user_role"`
}

type ListRoomsResponseDTO struct {
	Rooms []RoomResponseDTO `json:"rooms"`
}

type RoomMemberResponseDTO struct {
	RoomMember

	Name      string  `json:"name"      gorm:"column:name"`
	Email     string  `json:"email"     gorm:"column:email"`
	AvatarURL *string `json:"avatarUrl" gorm:"column:avatar_url"`
}

type ListRoomMembersResponseDTO struct {
	Members []RoomMemberResponseDTO `json:"members"`
}

type RoomMessageResponseDTO struct {
	RoomMessage

	AuthorName      *string `json:"authorName"      gorm:"column:author_name"`
	AuthorEmail     *string `json:"authorEmail"     gorm:"column:author_email"`
	AuthorAvatarURL *string `json:"authorAvatarUrl" gorm:"column:author_avatar_url"`
	ReplyCount      int     `json:"replyCount"      gorm:"column:reply_count"`
	ImageURL        string  `json:"imageUrl"        gorm:"-"`
}

type ListRoomMessagesResponseDTO struct {
	Messages []*RoomMessageResponseDTO `json:"messages"`
}
