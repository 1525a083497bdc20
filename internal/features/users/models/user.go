package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID `json:"id"                   gorm:"column:id"`
	Email                string    `json:"email"                gorm:"column:email"`
	Name                 string    `json:"name"                 gorm:"column:name"`
	AvatarURL            *string   `json:"avatarUrl"            gorm:"column:avatar_url"`
	HashedPassword       *string   `json:"-"                    gorm:"column:hashed_password"`
	PasswordCreationTime time.Time `json:"-"                    gorm:"column:password_creation_time"`
	CreatedAt            time.Time `json:"createdAt"            gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
