package documents

import (
	audit_logs "teamhub-backend/internal/features/audit_logs"
	"teamhub-backend/internal/features/storages"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var documentRepository = &DocumentRepository{}
var documentService = &DocumentService{
	documentRepository,
	workspaces_services.GetWorkspaceService(),
	storages.GetFileService(),
	audit_logs.GetAuditLogService(),
	revisions.GetTracker(),
}
var documentController = &DocumentController{
	documentService,
}

func GetDocumentService() *DocumentService {
	return documentService
}

func GetDocumentController() *DocumentController {
	return documentController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(documentService)
}
