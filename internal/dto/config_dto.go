package dto

import "time"

type UpsertConfigRequest struct {
	Key   string `json:"key" validate:"required,min=2,max=100"`
	Value string `json:"value" validate:"required"`
}

type ConfigResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
