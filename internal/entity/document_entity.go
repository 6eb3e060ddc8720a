// FILE: internal/entity/document_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentKind string
type DocumentStatus string

const (
	DocumentKindIdentity DocumentKind = "documento_identidade"
	DocumentKindSelfie   DocumentKind = "selfie_documento"

	DocumentStatusPending  DocumentStatus = "pendente"
	DocumentStatusApproved DocumentStatus = "aprovado"
	DocumentStatusRejected DocumentStatus = "rejeitado"
)

// UserDocument is one uploaded file reference per trader per kind.
// Several documents of the same kind may coexist (re-uploads after
// rejection).
type UserDocument struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Kind        DocumentKind
	StoragePath string
	Status      DocumentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
