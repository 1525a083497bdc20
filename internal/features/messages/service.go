package messages

import (
	"context"
	"fmt"
	"time"

	"teamhub-backend/internal/features/channels"
	"teamhub-backend/internal/features/storages"
	users_models "teamhub-backend/internal/features/users/models"
	workspaces_models "teamhub-backend/internal/features/workspaces/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type MessageService struct {
	messageRepository      *MessageRepository
	conversationRepository *ConversationRepository
	channelService         *channels.ChannelService
	workspaceService       *workspaces_services.WorkspaceService
	fileService            *storages.FileService
	revisionTracker        *revisions.Tracker
}

func (s *MessageService) SendMessage(
	ctx context.Context,
	request *SendMessageRequestDTO,
	user *users_models.User,
) (*Message, error) {
	message := &Message{
		ID:              uuid.New(),
		ChannelID:       request.ChannelID,
		ConversationID:  request.ConversationID,
		ParentMessageID: request.ParentMessageID,
		Body:            request.Body,
		ImageFileID:     request.ImageFileID,
		CreatedAt:       time.Now().UTC(),
	}

	var conversation *Conversation

	if request.ParentMessageID != nil {
		parent, err := s.messageRepository.FindByID(*request.ParentMessageID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent message: %w", err)
		}

		if parent == nil {
			return nil, apperrors.NotFound("parent message not found")
		}

		// Replies live in the parent's context.
		message.WorkspaceID = parent.WorkspaceID
		message.ChannelID = parent.ChannelID
		message.ConversationID = parent.ConversationID

		if parent.ConversationID != nil {
			conversation, err = s.conversationRepository.FindByID(*parent.ConversationID)
			if err != nil {
				return nil, fmt.Errorf("failed to get conversation: %w", err)
			}
		}
	} else if request.ChannelID != nil && request.ConversationID == nil {
		channel, err := s.channelService.GetChannelByID(*request.ChannelID)
		if err != nil {
			return nil, fmt.Errorf("failed to get channel: %w", err)
		}

		if channel == nil {
			return nil, apperrors.NotFound("channel not found")
		}

		message.WorkspaceID = channel.WorkspaceID
	} else if request.ConversationID != nil && request.ChannelID == nil {
		var err error
		conversation, err = s.conversationRepository.FindByID(*request.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get conversation: %w", err)
		}

		if conversation == nil {
			return nil, apperrors.NotFound("conversation not found")
		}

		message.WorkspaceID = conversation.WorkspaceID
	} else {
		return nil, apperrors.InvalidArg("message needs exactly one of channel or conversation")
	}

	member, err := s.workspaceService.RequireMember(user.ID, message.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if conversation != nil && !conversation.HasMember(member.ID) {
		return nil, apperrors.Forbidden("not a participant of this conversation")
	}

	message.MemberID = member.ID

	if err := message.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if message.ImageFileID != nil {
		if err := s.fileService.StatFile(ctx, *message.ImageFileID); err != nil {
			return nil, apperrors.InvalidArg("image file id does not reference an uploaded file")
		}
	}

	if err := s.messageRepository.Save(message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.bumpMessageRevisions(message)

	return message, nil
}

func (s *MessageService) GetChannelMessages(
	ctx context.Context,
	channelID uuid.UUID,
	user *users_models.User,
) (*ListMessagesResponseDTO, error) {
	channel, err := s.channelService.GetChannelByID(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return emptyMessageList(), nil
	}

	member, err := s.workspaceService.ResolveMember(user.ID, channel.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return emptyMessageList(), nil
	}

	messagesList, err := s.messageRepository.FindChannelMessages(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel messages: %w", err)
	}

	s.attachImageURLs(ctx, messagesList)

	return &ListMessagesResponseDTO{Messages: messagesList}, nil
}

func (s *MessageService) GetConversationMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	user *users_models.User,
) (*ListMessagesResponseDTO, error) {
	conversation, err := s.conversationRepository.FindByID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if conversation == nil {
		return emptyMessageList(), nil
	}

	member, err := s.workspaceService.ResolveMember(user.ID, conversation.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil || !conversation.HasMember(member.ID) {
		return emptyMessageList(), nil
	}

	messagesList, err := s.messageRepository.FindConversationMessages(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation messages: %w", err)
	}

	s.attachImageURLs(ctx, messagesList)

	return &ListMessagesResponseDTO{Messages: messagesList}, nil
}

func (s *MessageService) GetThreadMessages(
	ctx context.Context,
	parentMessageID uuid.UUID,
	user *users_models.User,
) (*ListMessagesResponseDTO, error) {
	parent, err := s.messageRepository.FindByID(parentMessageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get parent message: %w", err)
	}

	if parent == nil {
		return emptyMessageList(), nil
	}

	member, err := s.workspaceService.ResolveMember(user.ID, parent.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return emptyMessageList(), nil
	}

	if parent.ConversationID != nil {
		conversation, err := s.conversationRepository.FindByID(*parent.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get conversation: %w", err)
		}

		if conversation == nil || !conversation.HasMember(member.ID) {
			return emptyMessageList(), nil
		}
	}

	messagesList, err := s.messageRepository.FindThreadMessages(parentMessageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread messages: %w", err)
	}

	s.attachImageURLs(ctx, messagesList)

	return &ListMessagesResponseDTO{Messages: messagesList}, nil
}

func (s *MessageService) UpdateMessage(
	messageID uuid.UUID,
	request *UpdateMessageRequestDTO,
	user *users_models.User,
) (*Message, error) {
	message, member, err := s.getMessageForMember(messageID, user)
	if err != nil {
		return nil, err
	}

	if message.MemberID != member.ID {
		return nil, apperrors.Forbidden("only the author can edit a message")
	}

	now := time.Now().UTC()
	message.Body = request.Body
	message.UpdatedAt = &now

	if err := s.messageRepository.Save(message); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	s.bumpMessageRevisions(message)

	return message, nil
}

func (s *MessageService) DeleteMessage(
	ctx context.Context,
	messageID uuid.UUID,
	user *users_models.User,
) error {
	message, member, err := s.getMessageForMember(messageID, user)
	if err != nil {
		return err
	}

	if message.MemberID != member.ID && !member.IsAdmin() {
		return apperrors.Forbidden("only the author or an admin can delete a message")
	}

	// Replies first, then the message itself.
	replies, err := s.messageRepository.FindReplies(messageID)
	if err != nil {
		return fmt.Errorf("failed to get replies: %w", err)
	}

	for _, reply := range replies {
		if reply.ImageFileID != nil {
			_ = s.fileService.DeleteFile(ctx, *reply.ImageFileID)
		}
	}

	if err := s.messageRepository.DeleteReplies(messageID); err != nil {
		return fmt.Errorf("failed to delete replies: %w", err)
	}

	if message.ImageFileID != nil {
		_ = s.fileService.DeleteFile(ctx, *message.ImageFileID)
	}

	if err := s.messageRepository.DeleteByID(messageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.bumpMessageRevisions(message)
	// The deleted message's own thread changed too (replies are gone).
	s.revisionTracker.Bump("thread-messages", messageID)

	return nil
}

func (s *MessageService) CreateOrGetConversation(
	request *CreateConversationRequestDTO,
	user *users_models.User,
) (*Conversation, error) {
	member, err := s.workspaceService.RequireMember(user.ID, request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	otherMember, err := s.workspaceService.GetMemberByID(request.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if otherMember == nil || otherMember.WorkspaceID != request.WorkspaceID {
		return nil, apperrors.NotFound("member not found in this workspace")
	}

	existing, err := s.conversationRepository.FindByMembers(
		request.WorkspaceID,
		member.ID,
		otherMember.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}

	if existing != nil {
		return existing, nil
	}

	conversation := &Conversation{
		ID:          uuid.New(),
		WorkspaceID: request.WorkspaceID,
		MemberOneID: member.ID,
		MemberTwoID: otherMember.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.conversationRepository.Save(conversation); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return conversation, nil
}

func (s *MessageService) getMessageForMember(
	messageID uuid.UUID,
	user *users_models.User,
) (*Message, *workspaces_models.Member, error) {
	message, err := s.messageRepository.FindByID(messageID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get message: %w", err)
	}

	if message == nil {
		return nil, nil, apperrors.NotFound("message not found")
	}

	member, err := s.workspaceService.RequireMember(user.ID, message.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}

	return message, member, nil
}

// bumpMessageRevisions records a write against every list the message
// appears in, keyed by its container rather than the workspace so the
// list controllers can derive ETags straight from their path ids.
func (s *MessageService) bumpMessageRevisions(message *Message) {
	if message.ChannelID != nil {
		s.revisionTracker.Bump("channel-messages", *message.ChannelID)
	}
	if message.ConversationID != nil {
		s.revisionTracker.Bump("conversation-messages", *message.ConversationID)
	}
	if message.ParentMessageID != nil {
		s.revisionTracker.Bump("thread-messages", *message.ParentMessageID)
	}
}

func (s *MessageService) attachImageURLs(ctx context.Context, list []*MessageResponseDTO) {
	for _, message := range list {
		if message.ImageFileID == nil {
			continue
		}

		url, err := s.fileService.GetDownloadURL(ctx, *message.ImageFileID, "image")
		if err != nil {
			continue
		}

		message.ImageURL = &url
	}
}

// OnBeforeChannelDeletion removes all messages of the channel.
func (s *MessageService) OnBeforeChannelDeletion(channelID uuid.UUID) error {
	return s.messageRepository.DeleteByChannelID(channelID)
}

// OnBeforeWorkspaceDeletion removes all messages and conversations of
// the workspace.
func (s *MessageService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	if err := s.messageRepository.DeleteByWorkspaceID(workspaceID); err != nil {
		return err
	}

	return s.conversationRepository.DeleteByWorkspaceID(workspaceID)
}

func emptyMessageList() *ListMessagesResponseDTO {
	return &ListMessagesResponseDTO{Messages: []*MessageResponseDTO{}}
}
