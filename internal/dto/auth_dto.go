package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Cpf       string `json:"cpf" validate:"required,cpf"`
	Phone     string `json:"phone" validate:"required,brphone"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Cep       string `json:"cep" validate:"required,cep"`
	Street    string `json:"street" validate:"required"`
	Number    string `json:"number" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required,len=2"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserId    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
