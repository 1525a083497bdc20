package workspaces_services

import (
	"fmt"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	users_models "teamhub-backend/internal/features/users/models"
	users_services "teamhub-backend/internal/features/users/services"
	workspaces_dto "teamhub-backend/internal/features/workspaces/dto"
	workspaces_repositories "teamhub-backend/internal/features/workspaces/repositories"
	"teamhub-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

type MembershipService struct {
	memberRepository    *workspaces_repositories.MemberRepository
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	userService         *users_services.UserService
	auditLogService     *audit_logs.AuditLogService
	workspaceService    *WorkspaceService
}

func (s *MembershipService) GetMembers(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.GetMembersResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	// Reads by non-members return an empty result rather than an error.
	if member == nil {
		return &workspaces_dto.GetMembersResponseDTO{
			Members: []workspaces_dto.WorkspaceMemberResponseDTO{},
		}, nil
	}

	members, err := s.memberRepository.GetWorkspaceMembers(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace members: %w", err)
	}

	membersList := make([]workspaces_dto.WorkspaceMemberResponseDTO, len(members))
	for i, m := range members {
		membersList[i] = *m
	}

	return &workspaces_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

func (s *MembershipService) ChangeMemberRole(
	workspaceID uuid.UUID,
	memberID uuid.UUID,
	request *workspaces_dto.ChangeMemberRoleRequestDTO,
	changedBy *users_models.User,
) error {
	if !request.Role.IsValid() {
		return apperrors.InvalidArg("invalid member role")
	}

	caller, err := s.workspaceService.RequireAdmin(changedBy.ID, workspaceID)
	if err != nil {
		return err
	}

	if caller.ID == memberID {
		return apperrors.InvalidArg("cannot change your own role")
	}

	targetMember, err := s.memberRepository.GetMemberByID(memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}

	if targetMember == nil || targetMember.WorkspaceID != workspaceID {
		return apperrors.NotFound("member not found in this workspace")
	}

	if err := s.memberRepository.UpdateMemberRole(memberID, request.Role); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	targetUser, err := s.userService.GetUserByID(targetMember.UserID)
	if err == nil && targetUser != nil {
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf(
				"Member role changed: %s from %s to %s",
				targetUser.Email,
				targetMember.Role,
				request.Role,
			),
			&changedBy.ID,
			&workspaceID,
		)
	}

	return nil
}

func (s *MembershipService) RemoveMember(
	workspaceID uuid.UUID,
	memberID uuid.UUID,
	removedBy *users_models.User,
) error {
	caller, err := s.workspaceService.RequireAdmin(removedBy.ID, workspaceID)
	if err != nil {
		return err
	}

	if caller.ID == memberID {
		return apperrors.InvalidArg("cannot remove yourself, leave the workspace instead")
	}

	targetMember, err := s.memberRepository.GetMemberByID(memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}

	if targetMember == nil || targetMember.WorkspaceID != workspaceID {
		return apperrors.NotFound("member not found in this workspace")
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace != nil && workspace.OwnerUserID == targetMember.UserID {
		return apperrors.Forbidden("cannot remove the workspace owner")
	}

	if err := s.memberRepository.RemoveMember(memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	targetUser, err := s.userService.GetUserByID(targetMember.UserID)
	if err == nil && targetUser != nil {
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Member removed from workspace: %s", targetUser.Email),
			&removedBy.ID,
			&workspaceID,
		)
	}

	return nil
}

func (s *MembershipService) Leave(
	workspaceID uuid.UUID,
	user *users_models.User,
) error {
	member, err := s.workspaceService.RequireMember(user.ID, workspaceID)
	if err != nil {
		return err
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace != nil && workspace.OwnerUserID == user.ID {
		return apperrors.Forbidden("workspace owner cannot leave, delete the workspace instead")
	}

	if member.IsAdmin() {
		adminCount, err := s.CountAdmins(workspaceID)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if adminCount <= 1 {
			return apperrors.FailedPrecondition("cannot leave as the workspace's last admin")
		}
	}

	if err := s.memberRepository.RemoveMember(member.ID); err != nil {
		return fmt.Errorf("failed to leave workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User left workspace: %s", user.Email),
		&user.ID,
		&workspaceID,
	)

	return nil
}

func (s *MembershipService) CountAdmins(workspaceID uuid.UUID) (int64, error) {
	return s.memberRepository.CountWorkspaceAdmins(workspaceID)
}
