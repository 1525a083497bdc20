package workspaces_models

import (
	"time"

	workspaces_enums "teamhub-backend/internal/features/workspaces/enums"

	"github.com/google/uuid"
)

// Member binds a user to a workspace and is the unit of authorship
// for all workspace content.
type Member struct {
	ID          uuid.UUID                   `json:"id"          gorm:"column:id"`
	UserID      uuid.UUID                   `json:"userId"      gorm:"column:user_id"`
	WorkspaceID uuid.UUID                   `json:"workspaceId" gorm:"column:workspace_id"`
	Role        workspaces_enums.MemberRole `json:"role"        gorm:"column:role"`
	CreatedAt   time.Time                   `json:"createdAt"   gorm:"column:created_at"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) IsAdmin() bool {
	return m.Role == workspaces_enums.MemberRoleAdmin
}
