package rooms

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type RoomRole string

const (
	RoomRoleAdmin  RoomRole = "admin"
	RoomRoleMember RoomRole = "member"
)

func (r RoomRole) IsValid() bool {
	return r == RoomRoleAdmin || r == RoomRoleMember
}

type DiscussionRoom struct {
	ID                uuid.UUID `json:"id"                gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID       uuid.UUID `json:"workspaceId"       gorm:"column:workspace_id;type:uuid;not null"`
	Name              string    `json:"name"              gorm:"column:name;type:text;not null"`
	Topic             string    `json:"topic"             gorm:"column:topic;type:text;not null"`
	Description       *string   `json:"description"       gorm:"column:description;type:text"`
	CreatedByMemberID uuid.UUID `json:"createdByMemberId" gorm:"column:created_by_member_id;type:uuid;not null"`
	IsPrivate         bool      `json:"isPrivate"         gorm:"column:is_private;not null;default:false"`
	MaxMembers        *int      `json:"maxMembers"        gorm:"column:max_members"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
}

func (r *DiscussionRoom) TableName() string {
	return "discussion_rooms"
}

func (r *DiscussionRoom) Validate() error {
	if r.Name == "" {
		return errors.New("room name is required")
	}
	if r.Topic == "" {
		return errors.New("room topic is required")
	}
	if r.MaxMembers != nil && *r.MaxMembers < 1 {
		return errors.New("room capacity must be at least 1")
	}
	return nil
}

type RoomMember struct {
	ID       uuid.UUID `json:"id"       gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	RoomID   uuid.UUID `json:"roomId"   gorm:"column:room_id;type:uuid;not null"`
	MemberID uuid.UUID `json:"memberId" gorm:"column:member_id;type:uuid;not null"`
	Role     RoomRole  `json:"role"     gorm:"column:role;type:text;not null"`
	IsMuted  bool      `json:"isMuted"  gorm:"column:is_muted;not null;default:false"`

	JoinedAt time.Time `json:"joinedAt" gorm:"column:joined_at;type:timestamp with time zone;not null;default:now()"`
}

func (m *RoomMember) TableName() string {
	return "room_members"
}

type RoomMessage struct {
	ID              uuid.UUID  `json:"id"              gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	RoomID          uuid.UUID  `json:"roomId"          gorm:"column:room_id;type:uuid;not null"`
	MemberID        uuid.UUID  `json:"memberId"        gorm:"column:member_id;type:uuid;not null"`
	ParentMessageID *uuid.UUID `json:"parentMessageId" gorm:"column:parent_message_id;type:uuid"`
	Body            string     `json:"body"            gorm:"column:body;type:text;not null"`
	ImageFileID     *uuid.UUID `json:"imageFileId"     gorm:"column:image_file_id;type:uuid"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
}

func (m *RoomMessage) TableName() string {
	return "room_messages"
}

func (m *RoomMessage) Validate() error {
	if m.Body == "" {
		return errors.New("message body is required")
	}
	return nil
}
