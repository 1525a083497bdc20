package rooms

import (
	"context"
	"fmt"
	"time"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	"teamhub-backend/internal/features/storages"
	users_models "teamhub-backend/internal/features/users/models"
	workspaces_models "teamhub-backend/internal/features/workspaces/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type RoomService struct {
	roomRepository        *RoomRepository
	roomMemberRepository  *RoomMemberRepository
	roomMessageRepository *RoomMessageRepository
	workspaceService      *workspaces_services.WorkspaceService
	fileService           *storages.FileService
	auditLogService       *audit_logs.AuditLogService
	revisionTracker       *revisions.Tracker
}

// CreateRoom enrolls the creator as the room's first member with the
// admin role.
func (s *RoomService) CreateRoom(
	request *CreateRoomRequestDTO,
	user *users_models.User,
) (*DiscussionRoom, error) {
	member, err := s.workspaceService.RequireMember(user.ID, request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	room := &DiscussionRoom{
		ID:                uuid.New(),
		WorkspaceID:       request.WorkspaceID,
		Name:              request.Name,
		Topic:             request.Topic,
		Description:       request.Description,
		CreatedByMemberID: member.ID,
		IsPrivate:         request.IsPrivate,
		MaxMembers:        request.MaxMembers,
		CreatedAt:         time.Now().UTC(),
	}

	if err := room.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.roomRepository.Save(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	creatorMembership := &RoomMember{
		ID:       uuid.New(),
		RoomID:   room.ID,
		MemberID: member.ID,
		Role:     RoomRoleAdmin,
		IsMuted:  false,
		JoinedAt: time.Now().UTC(),
	}

	if err := s.roomMemberRepository.Save(creatorMembership); err != nil {
		return nil, fmt.Errorf("failed to enroll room creator: %w", err)
	}

	s.revisionTracker.Bump("rooms", room.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Discussion room created: %s", room.Name),
		&user.ID,
		&room.WorkspaceID,
	)

	return room, nil
}

func (s *RoomService) GetRooms(
	workspaceID uuid.UUID,
	topic *string,
	user *users_models.User,
) (*ListRoomsResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return &ListRoomsResponseDTO{Rooms: []RoomResponseDTO{}}, nil
	}

	roomsList, err := s.roomRepository.FindViewsByWorkspaceID(workspaceID, member.ID, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return &ListRoomsResponseDTO{Rooms: roomsList}, nil
}

// GetRoomMembers is a read, callers outside the room get an empty list
// rather than an error.
func (s *RoomService) GetRoomMembers(
	roomID uuid.UUID,
	user *users_models.User,
) (*ListRoomMembersResponseDTO, error) {
	roomMember, err := s.resolveRoomMember(roomID, user)
	if err != nil {
		return nil, err
	}
	if roomMember == nil {
		return &ListRoomMembersResponseDTO{Members: []RoomMemberResponseDTO{}}, nil
	}

	membersList, err := s.roomMemberRepository.FindViewsByRoomID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room members: %w", err)
	}

	return &ListRoomMembersResponseDTO{Members: membersList}, nil
}

func (s *RoomService) JoinRoom(roomID uuid.UUID, user *users_models.User) (*RoomMember, error) {
	room, err := s.roomRepository.FindByID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if room == nil {
		return nil, apperrors.NotFound("room not found")
	}

	member, err := s.workspaceService.RequireMember(user.ID, room.WorkspaceID)
	if err != nil {
		return nil, err
	}

	existing, err := s.roomMemberRepository.FindByRoomAndMember(roomID, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check room membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("already a member of this room")
	}

	if room.MaxMembers != nil {
		count, err := s.roomMemberRepository.CountByRoomID(roomID)
		if err != nil {
			return nil, fmt.Errorf("failed to count room members: %w", err)
		}
		if count >= int64(*room.MaxMembers) {
			return nil, apperrors.FailedPrecondition("room is full")
		}
	}

	roomMember := &RoomMember{
		ID:       uuid.New(),
		RoomID:   roomID,
		MemberID: member.ID,
		Role:     RoomRoleMember,
		IsMuted:  false,
		JoinedAt: time.Now().UTC(),
	}

	if err := s.roomMemberRepository.Save(roomMember); err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	s.revisionTracker.Bump("rooms", room.WorkspaceID)

	return roomMember, nil
}

// LeaveRoom removes the caller's own membership. A sole admin may leave,
// the room then has no admin until one rejoins or it is deleted.
func (s *RoomService) LeaveRoom(roomID uuid.UUID, user *users_models.User) error {
	room, roomMember, err := s.requireRoomMember(roomID, user)
	if err != nil {
		return err
	}

	if err := s.roomMemberRepository.DeleteByID(roomMember.ID); err != nil {
		return fmt.Errorf("failed to leave room: %w", err)
	}

	s.revisionTracker.Bump("rooms", room.WorkspaceID)

	return nil
}

func (s *RoomService) ToggleMute(roomID uuid.UUID, user *users_models.User) (*RoomMember, error) {
	_, roomMember, err := s.requireRoomMember(roomID, user)
	if err != nil {
		return nil, err
	}

	roomMember.IsMuted = !roomMember.IsMuted

	if err := s.roomMemberRepository.Save(roomMember); err != nil {
		return nil, fmt.Errorf("failed to toggle mute: %w", err)
	}

	return roomMember, nil
}

func (s *RoomService) SendMessage(
	ctx context.Context,
	roomID uuid.UUID,
	request *SendRoomMessageRequestDTO,
	user *users_models.User,
) (*RoomMessage, error) {
	room, roomMember, err := s.requireRoomMember(roomID, user)
	if err != nil {
		return nil, err
	}

	if request.ParentMessageID != nil {
		parent, err := s.roomMessageRepository.FindByID(*request.ParentMessageID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent message: %w", err)
		}
		if parent == nil || parent.RoomID != roomID {
			return nil, apperrors.NotFound("parent message not found")
		}
	}

	message := &RoomMessage{
		ID:              uuid.New(),
		RoomID:          roomID,
		MemberID:        roomMember.MemberID,
		ParentMessageID: request.ParentMessageID,
		Body:            request.Body,
		ImageFileID:     request.ImageFileID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := message.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if message.ImageFileID != nil {
		if err := s.fileService.StatFile(ctx, *message.ImageFileID); err != nil {
			return nil, apperrors.InvalidArg("image file id does not reference an uploaded file")
		}
	}

	if err := s.roomMessageRepository.Save(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.revisionTracker.Bump("rooms", room.WorkspaceID)

	return message, nil
}

func (s *RoomService) GetMessages(
	ctx context.Context,
	roomID uuid.UUID,
	parentMessageID *uuid.UUID,
	user *users_models.User,
) (*ListRoomMessagesResponseDTO, error) {
	roomMember, err := s.resolveRoomMember(roomID, user)
	if err != nil {
		return nil, err
	}
	if roomMember == nil {
		return &ListRoomMessagesResponseDTO{Messages: []*RoomMessageResponseDTO{}}, nil
	}

	messages, err := s.roomMessageRepository.FindViews(roomID, parentMessageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	for _, message := range messages {
		if message.ImageFileID == nil {
			continue
		}
		url, err := s.fileService.GetDownloadURL(ctx, *message.ImageFileID, "image")
		if err != nil {
			continue
		}
		message.ImageURL = url
	}

	return &ListRoomMessagesResponseDTO{Messages: messages}, nil
}

// DeleteRoom is restricted to workspace admins, room membership is not
// required. Memberships and messages are cascaded before the room row.
func (s *RoomService) DeleteRoom(roomID uuid.UUID, user *users_models.User) error {
	room, err := s.roomRepository.FindByID(roomID)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if room == nil {
		return apperrors.NotFound("room not found")
	}

	if _, err := s.workspaceService.RequireAdmin(user.ID, room.WorkspaceID); err != nil {
		return err
	}

	if err := s.deleteRoomChildren(room); err != nil {
		return err
	}

	if err := s.roomRepository.DeleteByID(roomID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.revisionTracker.Bump("rooms", room.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Discussion room deleted: %s", room.Name),
		&user.ID,
		&room.WorkspaceID,
	)

	return nil
}

// resolveRoomMember returns nil without an error when the room does not
// exist or the caller is not enrolled in it, reads use it to fail open.
func (s *RoomService) resolveRoomMember(
	roomID uuid.UUID,
	user *users_models.User,
) (*RoomMember, error) {
	room, err := s.roomRepository.FindByID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, nil
	}

	member, err := s.workspaceService.ResolveMember(user.ID, room.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}

	roomMember, err := s.roomMemberRepository.FindByRoomAndMember(roomID, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check room membership: %w", err)
	}
	return roomMember, nil
}

func (s *RoomService) requireRoomMember(
	roomID uuid.UUID,
	user *users_models.User,
) (*DiscussionRoom, *RoomMember, error) {
	room, err := s.roomRepository.FindByID(roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get room: %w", err)
	}

	if room == nil {
		return nil, nil, apperrors.NotFound("room not found")
	}

	var member *workspaces_models.Member
	member, err = s.workspaceService.RequireMember(user.ID, room.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}

	roomMember, err := s.roomMemberRepository.FindByRoomAndMember(roomID, member.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check room membership: %w", err)
	}

	if roomMember == nil {
		return nil, nil, apperrors.Forbidden("not a member of this room")
	}

	return room, roomMember, nil
}

func (s *RoomService) deleteRoomChildren(room *DiscussionRoom) error {
	messages, err := s.roomMessageRepository.FindByRoomID(room.ID)
	if err != nil {
		return fmt.Errorf("failed to list room messages: %w", err)
	}

	ctx := context.Background()
	for _, message := range messages {
		if message.ImageFileID != nil {
			_ = s.fileService.DeleteFile(ctx, *message.ImageFileID)
		}
	}

	if err := s.roomMessageRepository.DeleteByRoomID(room.ID); err != nil {
		return fmt.Errorf("failed to delete room messages: %w", err)
	}

	if err := s.roomMemberRepository.DeleteByRoomID(room.ID); err != nil {
		return fmt.Errorf("failed to delete room members: %w", err)
	}

	return nil
}

func (s *RoomService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	roomsList, err := s.roomRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}

	for _, room := range roomsList {
		if err := s.deleteRoomChildren(room); err != nil {
			return err
		}
	}

	return s.roomRepository.DeleteByWorkspaceID(workspaceID)
}
