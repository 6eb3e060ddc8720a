// FILE: internal/entity/history_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventOrigin string
type EventType string

const (
	OriginAdmin  EventOrigin = "admin"
	OriginSystem EventOrigin = "sistema"

	EventTypeApprovalRequested EventType = "aprovacao_solicitada"
	EventTypeWithdrawal        EventType = "saque"
	EventTypeSecondChance      EventType = "segunda_chance"
	EventTypeManual            EventType = "manual"
)

// HistoryEntry is one append-only timeline record on an acquired plan.
// Entries are never updated or deleted in normal flow; an admin answer to a
// service request inserts its entry in the same transaction as the request
// update.
type HistoryEntry struct {
	Id               uuid.UUID
	AcquiredPlanId   uuid.UUID
	ServiceRequestId *uuid.UUID
	EventType        EventType
	Note             string
	RequestedAmount  *float64
	FinalAmount      *float64
	AttachmentRef    *string
	Status           RequestStatus
	Origin           EventOrigin
	CreatedAt        time.Time
}
