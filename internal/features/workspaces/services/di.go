package workspaces_services

import (
	audit_logs "teamhub-backend/internal/features/audit_logs"
	users_services "teamhub-backend/internal/features/users/services"
	workspaces_interfaces "teamhub-backend/internal/features/workspaces/interfaces"
	workspaces_repositories "teamhub-backend/internal/features/workspaces/repositories"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}
var memberRepository = &workspaces_repositories.MemberRepository{}

var workspaceService = &WorkspaceService{
	workspaceRepository,
	memberRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	[]workspaces_interfaces.WorkspaceDeletionListener{},
}

var membershipService = &MembershipService{
	memberRepository,
	workspaceRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	workspaceService,
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
