package messages

import (
	"teamhub-backend/internal/features/channels"
	"teamhub-backend/internal/features/storages"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var messageRepository = &MessageRepository{}
var conversationRepository = &ConversationRepository{}

var messageService = &MessageService{
	messageRepository,
	conversationRepository,
	channels.GetChannelService(),
	workspaces_services.GetWorkspaceService(),
	storages.GetFileService(),
	revisions.GetTracker(),
}

var messageController = &MessageController{
	messageService,
	revisions.GetTracker(),
}

func GetMessageService() *MessageService {
	return messageService
}

func GetMessageController() *MessageController {
	return messageController
}

func SetupDependencies() {
	channels.GetChannelService().AddChannelDeletionListener(messageService)
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(messageService)
}
