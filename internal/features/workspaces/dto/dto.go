package workspaces_dto

import (
	"time"

	workspaces_enums "teamhub-backend/internal/features/workspaces/enums"

	"github.com/google/uuid"
)

// Workspace DTOs
type CreateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type WorkspaceResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID uuid.UUID `json:"ownerUserId"`
	CreatedAt   time.Time `json:"createdAt"`

	// Join code is only populated for workspace admins
	JoinCode *string `json:"joinCode,omitempty"`

	// Caller's role in this workspace (populated when fetching for specific user)
	UserRole *workspaces_enums.MemberRole `json:"userRole,omitempty"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []WorkspaceResponseDTO `json:"workspaces"`
}

type JoinWorkspaceRequestDTO struct {
	JoinCode string `json:"joinCode" binding:"required"`
}

type NewJoinCodeResponseDTO struct {
	JoinCode string `json:"joinCode"`
}

// Membership DTOs
type ChangeMemberRoleRequestDTO struct {
	Role workspaces_enums.MemberRole `json:"role" binding:"required"`
}

type WorkspaceMemberResponseDTO struct {
	ID        uuid.UUID                   `json:"id"`
	UserID    uuid.UUID                   `json:"userId"`
	Email     string                      `json:"email"` // Populated from user join
	Name      string                      `json:"name"`  // Populated from user join
	AvatarURL *string                     `json:"avatarUrl"`
	Role      workspaces_enums.MemberRole `json:"role"`
	CreatedAt time.Time                   `json:"createdAt"`
}

type GetMembersResponseDTO struct {
	Members []WorkspaceMemberResponseDTO `json:"members"`
}
