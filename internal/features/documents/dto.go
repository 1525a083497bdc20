package documents

import (
	"github.com/google/uuid"
)

type CreateDocumentRequestDTO struct {
	WorkspaceID uuid.UUID  `json:"workspaceId" binding:"required"`
	ChannelID   *uuid.UUID `json:"channelId"`
	Name        string     `json:"name"        binding:"required,min=1,max=500"`
	FileID      uuid.UUID  `json:"fileId"      binding:"required"`
	FileType    string     `json:"fileType"`
	FileSize    int64      `json:"fileSize"`
	Description *string    `json:"description"`
	Tags        []string   `json:"tags"`
}

type ListDocumentsResponseDTO struct {
	Documents []*Document `json:"documents"`
}
