package rooms

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub-backend/internal/storage"
)

type RoomRepository struct{}

func (r *RoomRepository) Save(room *DiscussionRoom) error {
	return storage.GetDb().Save(room).Error
}

func (r *RoomRepository) FindByID(id uuid.UUID) (*DiscussionRoom, error) {
	var room DiscussionRoom
	if err := storage.GetDb().Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// FindViewsByWorkspaceID returns rooms visible to the given member:
// every public room plus the private rooms the member belongs to. Each
// row carries the member count plus the caller's enrollment, mute flag
// and room role.
func (r *RoomRepository) FindViewsByWorkspaceID(
	workspaceID uuid.UUID,
	memberID uuid.UUID,
	topic *string,
) ([]RoomResponseDTO, error) {
	query := storage.GetDb().
		Table("discussion_rooms r").
		Select(`r.*,
			(SELECT COUNT(*) FROM room_members rm WHERE rm.room_id = r.id) as member_count,
			EXISTS(SELECT 1 FROM room_members rm WHERE rm.room_id = r.id AND rm.member_id = ?) as is_member,
			COALESCE((SELECT rm.is_muted FROM room_members rm WHERE rm.room_id = r.id AND rm.member_id = ?), false) as is_muted,
			(SELECT rm.role FROM room_members rm WHERE rm.room_id = r.id AND rm.member_id = ?) as user_role`,
			memberID, memberID, memberID).
		Where("r.workspace_id = ?", workspaceID).
		Where(`NOT r.is_private
			OR EXISTS(SELECT 1 FROM room_members rm WHERE rm.room_id = r.id AND rm.member_id = ?)`,
			memberID).
		Order("r.created_at ASC")

	if topic != nil {
		query = query.Where("r.topic = ?", *topic)
	}

	var roomsList []RoomResponseDTO
	if err := query.Find(&roomsList).Error; err != nil {
		return nil, err
	}
	return roomsList, nil
}

func (r *RoomRepository) FindByWorkspaceID(workspaceID uuid.UUID) ([]*DiscussionRoom, error) {
	var roomsList []*DiscussionRoom
	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Find(&roomsList).Error
	if err != nil {
		return nil, err
	}
	return roomsList, nil
}

func (r *RoomRepository) DeleteByID(id uuid.UUID) error {
	return storage.GetDb().Where("id = ?", id).Delete(&DiscussionRoom{}).Error
}

func (r *RoomRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().Where("workspace_id = ?", workspaceID).Delete(&DiscussionRoom{}).Error
}

type RoomMemberRepository struct{}

func (r *RoomMemberRepository) Save(member *RoomMember) error {
	return storage.GetDb().Save(member).Error
}

func (r *RoomMemberRepository) FindByRoomAndMember(
	roomID, memberID uuid.UUID,
) (*RoomMember, error) {
	var roomMember RoomMember
	err := storage.GetDb().
		Where("room_id = ? AND member_id = ?", roomID, memberID).
		First(&roomMember).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roomMember, nil
}

func (r *RoomMemberRepository) FindViewsByRoomID(roomID uuid.UUID) ([]RoomMemberResponseDTO, error) {
	var membersList []RoomMemberResponseDTO
	err := storage.GetDb().
		Table("room_members rm").
		Select("rm.*, u.name, u.email, u.avatar_url").
		Joins("JOIN members m ON m.id = rm.member_id").
		Joins("JOIN users u ON u.id = m.user_id").
		Where("rm.room_id = ?", roomID).
		Order("rm.joined_at ASC").
		Find(&membersList).Error
	if err != nil {
		return nil, err
	}
	return membersList, nil
}

func (r *RoomMemberRepository) CountByRoomID(roomID uuid.UUID) (int64, error) {
	var count int64
	err := storage.GetDb().
		Model(&RoomMember{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}

func (r *RoomMemberRepository) DeleteByID(id uuid.UUID) error {
	return storage.GetDb().Where("id = ?", id).Delete(&RoomMember{}).Error
}

func (r *RoomMemberRepository) DeleteByRoomID(roomID uuid.UUID) error {
	return storage.GetDb().Where("room_id = ?", roomID).Delete(&RoomMember{}).Error
}

type RoomMessageRepository struct{}

const roomMessageViewSelect = `rm.*,
	u.name as author_name,
	u.email as author_email,
	u.avatar_url as author_avatar_url,
	(SELECT COUNT(*) FROM room_messages r WHERE r.parent_message_id = rm.id) as reply_count`

func (r *RoomMessageRepository) Save(message *RoomMessage) error {
	return storage.GetDb().Save(message).Error
}

func (r *RoomMessageRepository) FindByID(id uuid.UUID) (*RoomMessage, error) {
	var message RoomMessage
	if err := storage.GetDb().Where("id = ?", id).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// FindViews returns one thread level of a room: top level messages when
// parentMessageID is nil, otherwise the replies of that message.
func (r *RoomMessageRepository) FindViews(
	roomID uuid.UUID,
	parentMessageID *uuid.UUID,
) ([]*RoomMessageResponseDTO, error) {
	query := storage.GetDb().
		Table("room_messages rm").
		Select(roomMessageViewSelect).
		Joins("LEFT JOIN members m ON m.id = rm.member_id").
		Joins("LEFT JOIN users u ON u.id = m.user_id").
		Where("rm.room_id = ?", roomID).
		Order("rm.created_at ASC")

	if parentMessageID != nil {
		query = query.Where("rm.parent_message_id = ?", *parentMessageID)
	} else {
		query = query.Where("rm.parent_message_id IS NULL")
	}

	var messages []*RoomMessageResponseDTO
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *RoomMessageRepository) FindByRoomID(roomID uuid.UUID) ([]*RoomMessage, error) {
	var messages []*RoomMessage
	err := storage.GetDb().
		Where("room_id = ?", roomID).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *RoomMessageRepository) DeleteByRoomID(roomID uuid.UUID) error {
	return storage.GetDb().Where("room_id = ?", roomID).Delete(&RoomMessage{}).Error
}
