package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	FileURL   string    `json:"file_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UploadDocumentResponse struct {
	Id      uuid.UUID `json:"id"`
	FileURL string    `json:"file_url"`
}

type ReviewDocumentRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=aprovado rejeitado"`
}
