package faqs

import (
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/revisions"
)

var faqRepository = &FaqRepository{}
var faqService = &FaqService{
	faqRepository,
	workspaces_services.GetWorkspaceService(),
	revisions.GetTracker(),
}
var faqController = &FaqController{
	faqService,
	revisions.GetTracker(),
}

func GetFaqService() *FaqService {
	return faqService
}

func GetFaqController() *FaqController {
	return faqController
}

func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddWorkspaceDeletionListener(faqService)
}
