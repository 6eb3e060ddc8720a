// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleClient     Role = "cliente"
	RoleSuperAdmin Role = "super_admin"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRole struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      Role
	CreatedAt time.Time
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
