package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	AcquiredPlanId *uuid.UUID `json:"acquired_plan_id"`
	Type           string     `json:"type" validate:"required,oneof=saque saque_quinzenal segunda_chance aprovacao"`
	Description    string     `json:"description"`

	// Withdrawal dialog fields, folded into the description on create.
	HolderName string   `json:"holder_name"`
	HolderCpf  string   `json:"holder_cpf" validate:"omitempty,cpf"`
	Amount     *float64 `json:"amount" validate:"omitempty,gt=0"`
	PixKey     string   `json:"pix_key"`
}

type CreateRequestResponse struct {
	Id uuid.UUID `json:"id"`
}

type RespondRequestRequest struct {
	Id            uuid.UUID
	Status        string   `json:"status" validate:"required,oneof=aprovado efetuado recusado negado atendida rejeitada"`
	AdminResponse string   `json:"admin_response"`
	FinalAmount   *float64 `json:"final_amount" validate:"omitempty,gte=0"`
	ReceiptURL    string   `json:"receipt_url"`
}

type RespondRequestResponse struct {
	Id      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	Warning string    `json:"warning,omitempty"` // non-fatal side effect failures
}

type RequestResponse struct {
	Id             uuid.UUID  `json:"id"`
	UserId         uuid.UUID  `json:"user_id"`
	AcquiredPlanId *uuid.UUID `json:"acquired_plan_id"`
	Type           string     `json:"type"`
	Description    *string    `json:"description"`
	Status         string     `json:"status"`
	AdminResponse  *string    `json:"admin_response"`
	AnsweredAt     *time.Time `json:"answered_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RequestListingResponse struct {
	RequestResponse
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
}

type ListRequestsRequest struct {
	Type   string `query:"type" validate:"omitempty,oneof=saque saque_quinzenal segunda_chance aprovacao"`
	Status string `query:"status" validate:"omitempty,oneof=pendente aprovado efetuado recusado negado atendida rejeitada"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}
