package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Name        string    `json:"name"        gorm:"column:name"`
	OwnerUserID uuid.UUID `json:"ownerUserId" gorm:"column:owner_user_id"`
	JoinCode    string    `json:"joinCode"    gorm:"column:join_code"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
