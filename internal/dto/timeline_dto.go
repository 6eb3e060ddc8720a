package dto

import (
	"time"

	"github.com/google/uuid"
)

// TimelineItemResponse is one rendered feed entry. Attachment URLs are not
// resolved here; the client calls the attachment endpoint when the entry is
// opened.
type TimelineItemResponse struct {
	Id              uuid.UUID `json:"id"`
	DisplayText     string    `json:"display_text"`
	EventType       string    `json:"event_type,omitempty"`
	StatusLabel     string    `json:"status_label,omitempty"`
	RequestedAmount string    `json:"requested_amount"`
	FinalAmount     string    `json:"final_amount"`
	Origin          string    `json:"origin,omitempty"`
	HasAttachment   bool      `json:"has_attachment"`
	CreatedAt       time.Time `json:"created_at"`
}

type AttachmentResponse struct {
	Kind      string `json:"kind"` // "image" or "link"
	URL       string `json:"url,omitempty"`
	Available bool   `json:"available"`
}

type CreateTimelineEntryRequest struct {
	AcquiredPlanId  uuid.UUID `json:"acquired_plan_id" validate:"required"`
	Note            string    `json:"note"`
	EventType       string    `json:"event_type"`
	Status          string    `json:"status" validate:"omitempty,oneof=pendente aprovado efetuado recusado negado atendida rejeitada"`
	RequestedAmount *float64  `json:"requested_amount" validate:"omitempty,gte=0"`
	FinalAmount     *float64  `json:"final_amount" validate:"omitempty,gte=0"`
	ReceiptURL      string    `json:"receipt_url"`
}

type CreateTimelineEntryResponse struct {
	Id uuid.UUID `json:"id"`
}
