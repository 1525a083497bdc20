package notes

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub-backend/internal/storage"
)

type NoteRepository struct{}

func (r *NoteRepository) Save(note *Note) error {
	return storage.GetDb().Save(note).Error
}

func (r *NoteRepository) FindByID(id uuid.UUID) (*Note, error) {
	var note Note
	if err := storage.GetDb().Where("id = ?", id).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// FindByWorkspaceID returns pinned notes first, newest first within
// each group.
func (r *NoteRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
	channelID *uuid.UUID,
) ([]*Note, error) {
	query := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("is_pinned DESC, created_at DESC")

	if channelID != nil {
		query = query.Where("channel_id = ?", *channelID)
	}

	var notesList []*Note
	if err := query.Find(&notesList).Error; err != nil {
		return nil, err
	}
	return notesList, nil
}

func (r *NoteRepository) DeleteByID(id uuid.UUID) error {
	return storage.GetDb().Where("id = ?", id).Delete(&Note{}).Error
}

func (r *NoteRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().Where("workspace_id = ?", workspaceID).Delete(&Note{}).Error
}
