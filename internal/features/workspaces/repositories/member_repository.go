package workspaces_repositories

import (
	"errors"
	"time"

	workspaces_dto "teamhub-backend/internal/features/workspaces/dto"
	workspaces_enums "teamhub-backend/internal/features/workspaces/enums"
	workspaces_models "teamhub-backend/internal/features/workspaces/models"
	"teamhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func (r *MemberRepository) CreateMember(member *workspaces_models.Member) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}

	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(member).Error
}

func (r *MemberRepository) GetMemberByID(
	memberID uuid.UUID,
) (*workspaces_models.Member, error) {
	var member workspaces_models.Member

	err := storage.GetDb().Where("id = ?", memberID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

func (r *MemberRepository) GetMemberByUserAndWorkspace(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.Member, error) {
	var member workspaces_models.Member

	err := storage.GetDb().
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

func (r *MemberRepository) GetWorkspaceMembers(
	workspaceID uuid.UUID,
) ([]*workspaces_dto.WorkspaceMemberResponseDTO, error) {
	var members []*workspaces_dto.WorkspaceMemberResponseDTO

	err := storage.GetDb().
		Table("members m").
		Select("m.id, m.user_id, u.email, u.name, u.avatar_url, m.role, m.created_at").
		Joins("JOIN users u ON m.user_id = u.id").
		Where("m.workspace_id = ?", workspaceID).
		Order("m.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MemberRepository) GetWorkspacesWithRolesByUserID(
	userID uuid.UUID,
) ([]workspaces_dto.WorkspaceResponseDTO, error) {
	results := make([]workspaces_dto.WorkspaceResponseDTO, 0)

	err := storage.GetDb().
		Table("workspaces w").
		Select("w.id, w.name, w.owner_user_id, w.created_at, m.role as user_role").
		Joins("JOIN members m ON w.id = m.workspace_id").
		Where("m.user_id = ?", userID).
		Order("w.name ASC").
		Scan(&results).Error

	return results, err
}

func (r *MemberRepository) UpdateMemberRole(
	memberID uuid.UUID,
	role workspaces_enums.MemberRole,
) error {
	return storage.GetDb().
		Model(&workspaces_models.Member{}).
		Where("id = ?", memberID).
		Update("role", role).Error
}

func (r *MemberRepository) RemoveMember(memberID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", memberID).
		Delete(&workspaces_models.Member{}).Error
}

func (r *MemberRepository) RemoveWorkspaceMembers(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&workspaces_models.Member{}).Error
}

func (r *MemberRepository) CountWorkspaceAdmins(workspaceID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&workspaces_models.Member{}).
		Where("workspace_id = ? AND role = ?", workspaceID, workspaces_enums.MemberRoleAdmin).
		Count(&count).Error

	return count, err
}
