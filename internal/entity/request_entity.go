// FILE: internal/entity/request_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type RequestType string

// RequestStatus is the single closed vocabulary shared by service requests
// and history entries. The legacy system let the two drift apart; here both
// sides write the same set.
type RequestStatus string

const (
	RequestTypeWithdrawal     RequestType = "saque"
	RequestTypeBiweeklySwitch RequestType = "saque_quinzenal"
	RequestTypeSecondChance   RequestType = "segunda_chance"
	RequestTypeApproval       RequestType = "aprovacao"

	RequestStatusPending  RequestStatus = "pendente"
	RequestStatusApproved RequestStatus = "aprovado"
	RequestStatusExecuted RequestStatus = "efetuado"
	RequestStatusRefused  RequestStatus = "recusado" // denied: out of cycle
	RequestStatusDenied   RequestStatus = "negado"   // denied: no balance
	RequestStatusServed   RequestStatus = "atendida"
	RequestStatusRejected RequestStatus = "rejeitada"
)

// ServiceRequest is a trader-submitted ask tied to an acquired plan,
// answered by an admin.
type ServiceRequest struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	AcquiredPlanId *uuid.UUID
	Type           RequestType
	Description    *string
	Status         RequestStatus
	AdminResponse  *string
	AnsweredAt     *time.Time
	AnsweredBy     *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ServiceRequestListing joins the requester's profile for the admin screen.
type ServiceRequestListing struct {
	ServiceRequest
	RequesterName  string
	RequesterEmail string
}
