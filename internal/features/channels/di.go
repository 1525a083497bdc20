package channels

import (
	audit_logs "teamhub-backend/internal/features/audit_logs"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var channelRepository = &ChannelRepository{}
var channelService = &ChannelService{
	channelRepository,
	workspaces_services.GetWorkspaceService(),
	audit_logs.GetAuditLogService(),
	revisions.GetTracker(),
	[]ChannelDeletionListener{},
}
var channelController = &ChannelController{
	channelService,
	revisions.GetTracker(),
}

func GetChannelService() *ChannelService {
	return channelService
}

func GetChannelController() *ChannelController {
	return channelController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(channelService)
}
