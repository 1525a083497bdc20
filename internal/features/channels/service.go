package channels

import (
	"fmt"
	"time"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	users_models "teamhub-backend/internal/features/users/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type ChannelService struct {
	channelRepository        *ChannelRepository
	workspaceService         *workspaces_services.WorkspaceService
	auditLogService          *audit_logs.AuditLogService
	revisionTracker          *revisions.Tracker
	channelDeletionListeners []ChannelDeletionListener
}

func (s *ChannelService) AddChannelDeletionListener(listener ChannelDeletionListener) {
	s.channelDeletionListeners = append(s.channelDeletionListeners, listener)
}

func (s *ChannelService) CreateChannel(
	workspaceID uuid.UUID,
	request *CreateChannelRequestDTO,
	user *users_models.User,
) (*Channel, error) {
	if _, err := s.workspaceService.RequireAdmin(user.ID, workspaceID); err != nil {
		return nil, err
	}

	channel := &Channel{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        request.Name,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := channel.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.channelRepository.Save(channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	s.revisionTracker.Bump("channels", workspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Channel created: %s", channel.Name),
		&user.ID,
		&workspaceID,
	)

	return channel, nil
}

func (s *ChannelService) GetChannels(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*ListChannelsResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return &ListChannelsResponseDTO{Channels: []*Channel{}}, nil
	}

	channelsList, err := s.channelRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}

	return &ListChannelsResponseDTO{Channels: channelsList}, nil
}

func (s *ChannelService) GetChannelByID(channelID uuid.UUID) (*Channel, error) {
	return s.channelRepository.FindByID(channelID)
}

func (s *ChannelService) UpdateChannel(
	channelID uuid.UUID,
	request *UpdateChannelRequestDTO,
	user *users_models.User,
) (*Channel, error) {
	channel, err := s.channelRepository.FindByID(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return nil, apperrors.NotFound("channel not found")
	}

	if _, err := s.workspaceService.RequireAdmin(user.ID, channel.WorkspaceID); err != nil {
		return nil, err
	}

	channel.Name = request.Name
	channel.UpdatedAt = time.Now().UTC()

	if err := s.channelRepository.Save(channel); err != nil {
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}

	s.revisionTracker.Bump("channels", channel.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Channel updated: %s", channel.Name),
		&user.ID,
		&channel.WorkspaceID,
	)

	return channel, nil
}

func (s *ChannelService) DeleteChannel(channelID uuid.UUID, user *users_models.User) error {
	channel, err := s.channelRepository.FindByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return apperrors.NotFound("channel not found")
	}

	if _, err := s.workspaceService.RequireAdmin(user.ID, channel.WorkspaceID); err != nil {
		return err
	}

	// Children first so no rows are left referencing a deleted channel.
	for _, listener := range s.channelDeletionListeners {
		if err := listener.OnBeforeChannelDeletion(channelID); err != nil {
			return fmt.Errorf("failed to delete channel: %w", err)
		}
	}

	if err := s.channelRepository.DeleteByID(channelID); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	s.revisionTracker.Bump("channels", channel.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Channel deleted: %s", channel.Name),
		&user.ID,
		&channel.WorkspaceID,
	)

	return nil
}

// OnBeforeWorkspaceDeletion removes all channels of the workspace,
// cascading their own children through the channel listeners.
func (s *ChannelService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	channelsList, err := s.channelRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to list channels: %w", err)
	}

	for _, channel := range channelsList {
		for _, listener := range s.channelDeletionListeners {
			if err := listener.OnBeforeChannelDeletion(channel.ID); err != nil {
				return err
			}
		}
	}

	return s.channelRepository.DeleteByWorkspaceID(workspaceID)
}
