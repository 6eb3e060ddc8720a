package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Trader management ---

type TraderListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

type TraderListResponse struct {
	Id                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	PaymentActive     bool      `json:"payment_active"`
	PlatformStatus    *string   `json:"platform_status"`
	DocumentsComplete bool      `json:"documents_complete"`
	CreatedAt         time.Time `json:"created_at"`
}

type AdminUpdateTraderRequest struct {
	Id             uuid.UUID
	Name           string  `json:"name"`
	Phone          string  `json:"phone" validate:"omitempty,brphone"`
	PaymentActive  *bool   `json:"payment_active"`
	PlatformStatus *string `json:"platform_status"`
	CustomNotes    *string `json:"custom_notes"`
}

type AdminCreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminCreateAdminResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// --- Dashboard ---

type DashboardStatsResponse struct {
	TraderCount        int64 `json:"trader_count"`
	ActiveAcquisitions int64 `json:"active_acquisitions"`
	PendingRequests    int64 `json:"pending_requests"`
	PendingDocuments   int64 `json:"pending_documents"`
}

// --- System backup ---

// SystemBackupResponse is the full JSON dump the admin screen turns into a
// downloadable file.
type SystemBackupResponse struct {
	Timestamp      time.Time               `json:"timestamp"`
	Profiles       []*ProfileResponse      `json:"profiles"`
	AcquiredPlans  []*AcquiredPlanResponse `json:"planos_adquiridos"`
	PlatformConfig []*ConfigResponse       `json:"platform_config"`
}

// --- System logs ---

type SystemLogListRequest struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Level string `query:"level"`
}

type SystemLogResponse struct {
	Id        string                 `json:"id"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"created_at"`
}

type SystemLogListResponse struct {
	Logs  []SystemLogResponse `json:"logs"`
	Total int64               `json:"total"`
}
