package faqs

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub-backend/internal/storage"
)

type FaqRepository struct{}

func (r *FaqRepository) Save(faq *Faq) error {
	return storage.GetDb().Save(faq).Error
}

func (r *FaqRepository) FindByID(id uuid.UUID) (*Faq, error) {
	var faq Faq
	if err := storage.GetDb().Where("id = ?", id).First(&faq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

// FindByWorkspaceID returns pinned faqs first, most upvoted first within
// each group.
func (r *FaqRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
	channelID *uuid.UUID,
) ([]*Faq, error) {
	query := storage.GetDb().Where("workspace_id = ?", workspaceID)

	if channelID != nil {
		query = query.Where("channel_id = ?", *channelID)
	}

	var faqsList []*Faq
	err := query.
		Order("is_pinned DESC, upvotes DESC").
		Find(&faqsList).Error
	if err != nil {
		return nil, err
	}
	return faqsList, nil
}

// IncrementUpvotes bumps the counter atomically in the database.
func (r *FaqRepository) IncrementUpvotes(id uuid.UUID) error {
	return storage.GetDb().
		Model(&Faq{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
}

func (r *FaqRepository) DeleteByID(id uuid.UUID) error {
	return storage.GetDb().Where("id = ?", id).Delete(&Faq{}).Error
}

func (r *FaqRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().Where("workspace_id = ?", workspaceID).Delete(&Faq{}).Error
}
