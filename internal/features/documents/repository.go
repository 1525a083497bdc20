package documents

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub-backend/internal/storage"
)

type DocumentRepository struct{}

func (r *DocumentRepository) Save(document *Document) error {
	return storage.GetDb().Save(document).Error
}

func (r *DocumentRepository) FindByID(id uuid.UUID) (*Document, error) {
	var document Document
	if err := storage.GetDb().Where("id = ?", id).First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
	channelID *uuid.UUID,
) ([]*Document, error) {
	query := storage.GetDb().Where("workspace_id = ?", workspaceID)

	if channelID != nil {
		query = query.Where("channel_id = ?", *channelID)
	}

	var documentsList []*Document
	err := query.
		Order("created_at DESC").
		Find(&documentsList).Error
	if err != nil {
		return nil, err
	}
	return documentsList, nil
}

func (r *DocumentRepository) DeleteByID(id uuid.UUID) error {
	return storage.GetDb().Where("id = ?", id).Delete(&Document{}).Error
}

func (r *DocumentRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().Where("workspace_id = ?", workspaceID).Delete(&Document{}).Error
}
