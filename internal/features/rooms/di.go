package rooms

import (
	audit_logs "teamhub-backend/internal/features/audit_logs"
	"teamhub-backend/internal/features/storages"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var roomRepository = &RoomRepository{}
var roomMemberRepository = &RoomMemberRepository{}
var roomMessageRepository = &RoomMessageRepository{}
var roomService = &RoomService{
	roomRepository,
	roomMemberRepository,
	roomMessageRepository,
	workspaces_services.GetWorkspaceService(),
	storages.GetFileService(),
	audit_logs.GetAuditLogService(),
	revisions.GetTracker(),
}
var roomController = &RoomController{
	roomService,
	revisions.GetTracker(),
}

func GetRoomService() *RoomService {
	return roomService
}

func GetRoomController() *RoomController {
	return roomController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(roomService)
}
