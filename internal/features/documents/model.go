package documents

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Document struct {
	ID                 uuid.UUID      `json:"id"                 gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkspaceID        uuid.UUID      `json:"workspaceId"        gorm:"column:workspace_id;type:uuid;not null"`
	ChannelID          *uuid.UUID     `json:"channelId"          gorm:"column:channel_id;type:uuid"`
	Name               string         `json:"name"               gorm:"column:name;type:text;not null"`
	FileID             uuid.UUID      `json:"fileId"             gorm:"column:file_id;type:uuid;not null"`
	FileType           string         `json:"fileType"           gorm:"column:file_type;type:text;not null"`
	FileSize           int64          `json:"fileSize"           gorm:"column:file_size;not null"`
	UploadedByMemberID uuid.UUID      `json:"uploadedByMemberId" gorm:"column:uploaded_by_member_id;type:uuid;not null"`
	Description        *string        `json:"description"        gorm:"column:description;type:text"`
	Tags               pq.StringArray `json:"tags"               gorm:"column:tags;type:text[]"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamp with time zone;not null;default:now()"`

	DownloadURL string `json:"downloadUrl" gorm:"-"`
}

func (d *Document) TableName() string {
	return "documents"
}

func (d *Document) Validate() error {
	if d.Name == "" {
		return errors.New("document name is required")
	}
	if d.FileID == uuid.Nil {
		return errors.New("document file id is required")
	}
	if d.FileSize < 0 {
		return errors.New("document file size cannot be negative")
	}
	return nil
}
