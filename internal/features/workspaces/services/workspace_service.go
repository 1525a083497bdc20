package workspaces_services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	users_models "teamhub-backend/internal/features/users/models"
	users_services "teamhub-backend/internal/features/users/services"
	workspaces_dto "teamhub-backend/internal/features/workspaces/dto"
	workspaces_enums "teamhub-backend/internal/features/workspaces/enums"
	workspaces_interfaces "teamhub-backend/internal/features/workspaces/interfaces"
	workspaces_models "teamhub-backend/internal/features/workspaces/models"
	workspaces_repositories "teamhub-backend/internal/features/workspaces/repositories"
	"teamhub-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

const joinCodeLength = 6
const joinCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type WorkspaceService struct {
	workspaceRepository        *workspaces_repositories.WorkspaceRepository
	memberRepository           *workspaces_repositories.MemberRepository
	userService                *users_services.UserService
	auditLogService            *audit_logs.AuditLogService
	workspaceDeletionListeners []workspaces_interfaces.WorkspaceDeletionListener
}

func (s *WorkspaceService) AddWorkspaceDeletionListener(
	listener workspaces_interfaces.WorkspaceDeletionListener,
) {
	s.workspaceDeletionListeners = append(s.workspaceDeletionListeners, listener)
}

func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	creator *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	joinCode, err := generateJoinCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate join code: %w", err)
	}

	workspace := &workspaces_models.Workspace{
		ID:          uuid.New(),
		Name:        request.Name,
		OwnerUserID: creator.ID,
		JoinCode:    joinCode,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	member := &workspaces_models.Member{
		UserID:      creator.ID,
		WorkspaceID: workspace.ID,
		Role:        workspaces_enums.MemberRoleAdmin,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.memberRepository.CreateMember(member); err != nil {
		return nil, fmt.Errorf("failed to create workspace member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		&creator.ID,
		&workspace.ID,
	)

	adminRole := workspaces_enums.MemberRoleAdmin
	return &workspaces_dto.WorkspaceResponseDTO{
		ID:          workspace.ID,
		Name:        workspace.Name,
		OwnerUserID: workspace.OwnerUserID,
		CreatedAt:   workspace.CreatedAt,
		JoinCode:    &workspace.JoinCode,
		UserRole:    &adminRole,
	}, nil
}

func (s *WorkspaceService) GetUserWorkspaces(
	user *users_models.User,
) (*workspaces_dto.ListWorkspacesResponseDTO, error) {
	workspaces, err := s.memberRepository.GetWorkspacesWithRolesByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user workspaces: %w", err)
	}

	return &workspaces_dto.ListWorkspacesResponseDTO{
		Workspaces: workspaces,
	}, nil
}

func (s *WorkspaceService) GetWorkspace(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	member, err := s.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	// Non-members get NotFound so workspace existence is not leaked.
	if member == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	response := &workspaces_dto.WorkspaceResponseDTO{
		ID:          workspace.ID,
		Name:        workspace.Name,
		OwnerUserID: workspace.OwnerUserID,
		CreatedAt:   workspace.CreatedAt,
		UserRole:    &member.Role,
	}

	if member.IsAdmin() {
		response.JoinCode = &workspace.JoinCode
	}

	return response, nil
}

func (s *WorkspaceService) UpdateWorkspace(
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	if _, err := s.RequireAdmin(user.ID, workspaceID); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	workspace.Name = request.Name

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace updated: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return workspace, nil
}

func (s *WorkspaceService) DeleteWorkspace(workspaceID uuid.UUID, user *users_models.User) error {
	if _, err := s.RequireAdmin(user.ID, workspaceID); err != nil {
		return err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return apperrors.NotFound("workspace not found")
	}

	// Children first so no rows are left referencing a deleted workspace.
	for _, listener := range s.workspaceDeletionListeners {
		if err := listener.OnBeforeWorkspaceDeletion(workspaceID); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}
	}

	if err := s.memberRepository.RemoveWorkspaceMembers(workspaceID); err != nil {
		return fmt.Errorf("failed to remove workspace members: %w", err)
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace deleted: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

func (s *WorkspaceService) JoinWorkspace(
	request *workspaces_dto.JoinWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByJoinCode(request.JoinCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up join code: %w", err)
	}

	if workspace == nil {
		return nil, apperrors.NotFound("invalid join code")
	}

	existingMember, err := s.memberRepository.GetMemberByUserAndWorkspace(user.ID, workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if existingMember != nil {
		return nil, apperrors.AlreadyExists("already a member of this workspace")
	}

	member := &workspaces_models.Member{
		UserID:      user.ID,
		WorkspaceID: workspace.ID,
		Role:        workspaces_enums.MemberRoleMember,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.memberRepository.CreateMember(member); err != nil {
		return nil, fmt.Errorf("failed to create workspace member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User joined workspace: %s", user.Email),
		&user.ID,
		&workspace.ID,
	)

	memberRole := workspaces_enums.MemberRoleMember
	return &workspaces_dto.WorkspaceResponseDTO{
		ID:          workspace.ID,
		Name:        workspace.Name,
		OwnerUserID: workspace.OwnerUserID,
		CreatedAt:   workspace.CreatedAt,
		UserRole:    &memberRole,
	}, nil
}

func (s *WorkspaceService) NewJoinCode(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.NewJoinCodeResponseDTO, error) {
	if _, err := s.RequireAdmin(user.ID, workspaceID); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	joinCode, err := generateJoinCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate join code: %w", err)
	}

	workspace.JoinCode = joinCode

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update join code: %w", err)
	}

	s.auditLogService.WriteAuditLog("Workspace join code regenerated", &user.ID, &workspaceID)

	return &workspaces_dto.NewJoinCodeResponseDTO{JoinCode: joinCode}, nil
}

func (s *WorkspaceService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	if _, err := s.RequireMember(user.ID, workspaceID); err != nil {
		return nil, err
	}

	return s.auditLogService.GetWorkspaceAuditLogs(workspaceID, request)
}

// ResolveMember returns the caller's member row in a workspace, or nil
// when no membership exists.
func (s *WorkspaceService) ResolveMember(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.Member, error) {
	member, err := s.memberRepository.GetMemberByUserAndWorkspace(userID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return member, nil
}

// RequireMember enforces the member-write policy: any mutation inside a
// workspace needs a member row.
func (s *WorkspaceService) RequireMember(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.Member, error) {
	member, err := s.ResolveMember(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return nil, apperrors.Forbidden("not a member of this workspace")
	}

	return member, nil
}

// RequireAdmin enforces the admin-only policy.
func (s *WorkspaceService) RequireAdmin(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.Member, error) {
	member, err := s.RequireMember(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if !member.IsAdmin() {
		return nil, apperrors.Forbidden("admin role required")
	}

	return member, nil
}

// RequireOwnerOrAdmin enforces the owner-or-admin policy: the mutation
// is allowed for the entity's creator or any workspace admin.
func (s *WorkspaceService) RequireOwnerOrAdmin(
	member *workspaces_models.Member,
	createdByMemberID uuid.UUID,
) error {
	if member.ID == createdByMemberID || member.IsAdmin() {
		return nil
	}

	return apperrors.Forbidden("only the creator or an admin can do this")
}

func (s *WorkspaceService) GetMemberByID(
	memberID uuid.UUID,
) (*workspaces_models.Member, error) {
	return s.memberRepository.GetMemberByID(memberID)
}

func generateJoinCode() (string, error) {
	code := make([]byte, joinCodeLength)

	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(joinCodeAlphabet))))
		if err != nil {
			return "", err
		}

		code[i] = joinCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
