package faqs

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Faq struct {
	ID                uuid.UUID  `json:"id"                gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID       uuid.UUID  `json:"workspaceId"       gorm:"column:workspace_id;type:uuid;not null"`
	ChannelID         *uuid.UUID `json:"channelId"         gorm:"column:channel_id;type:uuid"`
	Question          string     `json:"question"          gorm:"column:question;type:text;not null"`
	Answer            string     `json:"answer"            gorm:"column:answer;type:text;not null"`
	CreatedByMemberID uuid.UUID  `json:"createdByMemberId" gorm:"column:created_by_member_id;type:uuid;not null"`
	IsPinned          bool       `json:"isPinned"          gorm:"column:is_pinned;not null;default:false"`
	Upvotes           int        `json:"upvotes"           gorm:"column:upvotes;not null;default:0"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamp with time zone;not null;default:now()"`
}

func (f *Faq) TableName() string {
	return "faqs"
}

func (f *Faq) Validate() error {
	if f.Question == "" {
		return errors.New("faq question is required")
	}
	if f.Answer == "" {
		return errors.New("faq answer is required")
	}
	if f.Upvotes < 0 {
		return errors.New("faq upvotes cannot be negative")
	}
	return nil
}
