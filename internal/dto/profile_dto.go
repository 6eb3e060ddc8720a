package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Cpf               *string    `json:"cpf"`
	Phone             *string    `json:"phone"`
	BirthDate         *time.Time `json:"birth_date"`
	Cep               *string    `json:"cep"`
	Street            *string    `json:"street"`
	Number            *string    `json:"number"`
	City              *string    `json:"city"`
	State             *string    `json:"state"`
	ProfilePicture    *string    `json:"profile_picture"`
	PaymentActive     bool       `json:"payment_active"`
	PlatformStatus    *string    `json:"platform_status"`
	DocumentsComplete bool       `json:"documents_complete"`
	CustomNotes       *string    `json:"custom_notes,omitempty"`
	Role              string     `json:"role,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"omitempty,min=3"`
	Phone     string `json:"phone" validate:"omitempty,brphone"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Cep       string `json:"cep" validate:"omitempty,cep"`
	Street    string `json:"street"`
	Number    string `json:"number"`
	City      string `json:"city"`
	State     string `json:"state" validate:"omitempty,len=2"`
}

type UploadProfilePictureResponse struct {
	ProfilePicture string `json:"profile_picture"`
}
