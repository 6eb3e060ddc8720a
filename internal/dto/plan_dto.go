package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type UpdatePlanRequest struct {
	Id          uuid.UUID
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type PlanResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type AssignPlanRequest struct {
	ClientId       uuid.UUID `json:"client_id" validate:"required"`
	PlanId         uuid.UUID `json:"plan_id" validate:"required"`
	Status         string    `json:"status" validate:"omitempty,oneof=ativo eliminado pausado teste_1 teste_2 teste_1_sc teste_2_sc sim_rem"`
	WithdrawalType string    `json:"withdrawal_type" validate:"omitempty,oneof=mensal quinzenal"`
}

type UpdateAcquiredPlanRequest struct {
	Id             uuid.UUID
	Status         string `json:"status" validate:"omitempty,oneof=ativo eliminado pausado teste_1 teste_2 teste_1_sc teste_2_sc sim_rem"`
	WithdrawalType string `json:"withdrawal_type" validate:"omitempty,oneof=mensal quinzenal"`
}

type AcquiredPlanResponse struct {
	Id             uuid.UUID `json:"id"`
	ClientId       uuid.UUID `json:"client_id"`
	PlanId         uuid.UUID `json:"plan_id"`
	WalletId       string    `json:"wallet_id"`
	Status         string    `json:"status"`
	WithdrawalType string    `json:"withdrawal_type"`
	AcquiredAt     time.Time `json:"acquired_at"`
	PlanName       string    `json:"plan_name,omitempty"`
	PlanPrice      float64   `json:"plan_price,omitempty"`
}

type AcquiredPlanListingResponse struct {
	AcquiredPlanResponse
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}
