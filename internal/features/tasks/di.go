package tasks

import (
	audit_logs "teamhub-backend/internal/features/audit_logs"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var taskRepository = &TaskRepository{}
var taskCommentRepository = &TaskCommentRepository{}
var taskService = &TaskService{
	taskRepository,
	taskCommentRepository,
	workspaces_services.GetWorkspaceService(),
	audit_logs.GetAuditLogService(),
	revisions.GetTracker(),
}
var taskController = &TaskController{
	taskService,
	revisions.GetTracker(),
}

func GetTaskService() *TaskService {
	return taskService
}

func GetTaskController() *TaskController {
	return taskController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(taskService)
}
