package channels

import (
	"errors"
	"time"

	"teamhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChannelRepository struct{}

func (r *ChannelRepository) Save(channel *Channel) error {
	if channel.ID == uuid.Nil {
		channel.ID = uuid.New()
	}

	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Save(channel).Error
}

func (r *ChannelRepository) FindByID(channelID uuid.UUID) (*Channel, error) {
	var channel Channel

	err := storage.GetDb().Where("id = ?", channelID).First(&channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &channel, nil
}

func (r *ChannelRepository) FindByWorkspaceID(workspaceID uuid.UUID) ([]*Channel, error) {
	var channelsList []*Channel

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&channelsList).Error

	return channelsList, err
}

func (r *ChannelRepository) DeleteByID(channelID uuid.UUID) error {
	return storage.GetDb().Delete(&Channel{}, channelID).Error
}

func (r *ChannelRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&Channel{}).Error
}
