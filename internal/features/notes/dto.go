package notes

import (
	"github.com/google/uuid"
)

type CreateNoteRequestDTO struct {
	WorkspaceID uuid.UUID  `json:"workspaceId" binding:"required"`
	ChannelID   *uuid.UUID `json:"channelId"`
	Title       string     `json:"title"       binding:"required,min=1,max=500"`
	Content     string     `json:"content"     binding:"required,min=1"`
	Tags        []string   `json:"tags"`
}

type UpdateNoteRequestDTO struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type ListNotesResponseDTO struct {
	Notes []*Note `json:"notes"`
}
