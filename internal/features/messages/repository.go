package messages

import (
	"errors"
	"time"

	"teamhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const messageViewSelect = `m.id, m.workspace_id, m.member_id, m.channel_id, m.conversation_id,
	m.parent_message_id, m.body, m.image_file_id, m.created_at, m.updated_at,
	u.name as author_name, u.email as author_email, u.avatar_url as author_avatar_url,
	(SELECT COUNT(*) FROM messages r WHERE r.parent_message_id = m.id) as reply_count`

type MessageRepository struct{}

func (r *MessageRepository) Save(message *Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Save(message).Error
}

func (r *MessageRepository) FindByID(messageID uuid.UUID) (*Message, error) {
	var message Message

	err := storage.GetDb().Where("id = ?", messageID).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &message, nil
}

func (r *MessageRepository) FindChannelMessages(
	channelID uuid.UUID,
) ([]*MessageResponseDTO, error) {
	return r.findMessageViews("m.channel_id = ? AND m.parent_message_id IS NULL", channelID)
}

func (r *MessageRepository) FindConversationMessages(
	conversationID uuid.UUID,
) ([]*MessageResponseDTO, error) {
	return r.findMessageViews(
		"m.conversation_id = ? AND m.parent_message_id IS NULL",
		conversationID,
	)
}

func (r *MessageRepository) FindThreadMessages(
	parentMessageID uuid.UUID,
) ([]*MessageResponseDTO, error) {
	return r.findMessageViews("m.parent_message_id = ?", parentMessageID)
}

func (r *MessageRepository) findMessageViews(
	condition string,
	args ...any,
) ([]*MessageResponseDTO, error) {
	var messagesList []*MessageResponseDTO

	err := storage.GetDb().
		Table("messages m").
		Select(messageViewSelect).
		Joins("LEFT JOIN members mem ON m.member_id = mem.id").
		Joins("LEFT JOIN users u ON mem.user_id = u.id").
		Where(condition, args...).
		Order("m.created_at ASC").
		Scan(&messagesList).Error

	return messagesList, err
}

func (r *MessageRepository) FindReplies(parentMessageID uuid.UUID) ([]*Message, error) {
	var replies []*Message

	err := storage.GetDb().
		Where("parent_message_id = ?", parentMessageID).
		Find(&replies).Error

	return replies, err
}

func (r *MessageRepository) FindByChannelID(channelID uuid.UUID) ([]*Message, error) {
	var messagesList []*Message

	err := storage.GetDb().
		Where("channel_id = ?", channelID).
		Find(&messagesList).Error

	return messagesList, err
}

func (r *MessageRepository) DeleteByID(messageID uuid.UUID) error {
	return storage.GetDb().Delete(&Message{}, messageID).Error
}

func (r *MessageRepository) DeleteReplies(parentMessageID uuid.UUID) error {
	return storage.GetDb().
		Where("parent_message_id = ?", parentMessageID).
		Delete(&Message{}).Error
}

func (r *MessageRepository) DeleteByChannelID(channelID uuid.UUID) error {
	return storage.GetDb().
		Where("channel_id = ?", channelID).
		Delete(&Message{}).Error
}

func (r *MessageRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&Message{}).Error
}

type ConversationRepository struct{}

func (r *ConversationRepository) Save(conversation *Conversation) error {
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}

	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Save(conversation).Error
}

func (r *ConversationRepository) FindByID(conversationID uuid.UUID) (*Conversation, error) {
	var conversation Conversation

	err := storage.GetDb().Where("id = ?", conversationID).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &conversation, nil
}

func (r *ConversationRepository) FindByMembers(
	workspaceID, memberOneID, memberTwoID uuid.UUID,
) (*Conversation, error) {
	var conversation Conversation

	err := storage.GetDb().
		Where(
			`workspace_id = ? AND (
				(member_one_id = ? AND member_two_id = ?) OR
				(member_one_id = ? AND member_two_id = ?)
			)`,
			workspaceID,
			memberOneID, memberTwoID,
			memberTwoID, memberOneID,
		).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &conversation, nil
}

func (r *ConversationRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&Conversation{}).Error
}
