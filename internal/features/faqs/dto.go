package faqs

import (
	"github.com/google/uuid"
)

type CreateFaqRequestDTO struct {
	WorkspaceID uuid.UUID  `json:"workspaceId" binding:"required"`
	ChannelID   *uuid.UUID `json:"channelId"`
	Question    string     `json:"question"    binding:"required,min=1,max=1000"`
	Answer      string     `json:"answer"      binding:"required,min=1"`
}

type UpdateFaqRequestDTO struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type ListFaqsResponseDTO struct {
	Faqs []*Faq `json:"faqs"`
}
