package notes

import (
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var noteRepository = &NoteRepository{}
var noteService = &NoteService{
	noteRepository,
	workspaces_services.GetWorkspaceService(),
	revisions.GetTracker(),
}
var noteController = &NoteController{
	noteService,
	revisions.GetTracker(),
}

func GetNoteService() *NoteService {
	return noteService
}

func GetNoteController() *NoteController {
	return noteController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(noteService)
}
