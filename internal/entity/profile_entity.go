// FILE: internal/entity/profile_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the trader-facing registration data. One row per
// authenticated user; the Id is the auth user's id.
type Profile struct {
	Id                uuid.UUID
	Email             string
	Name              string
	Cpf               *string
	Phone             *string
	BirthDate         *time.Time
	Cep               *string
	Street            *string
	HouseNumber       *string
	City              *string
	State             *string
	ProfilePicture    *string
	PaymentActive     bool
	PlatformStatus    *string
	DocumentsComplete bool
	CustomNotes       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
