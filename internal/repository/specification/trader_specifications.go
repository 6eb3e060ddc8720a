package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters by exact email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByUserID filters rows owned by a user (solicitacoes, user_documents)
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByClientID filters acquired plans by owning client
type ByClientID struct {
	ClientID uuid.UUID
}

func (s ByClientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cliente_id = ?", s.ClientID)
}

// ByAcquiredPlanID filters history entries and requests by plan
type ByAcquiredPlanID struct {
	AcquiredPlanID uuid.UUID
}

func (s ByAcquiredPlanID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plano_adquirido_id = ?", s.AcquiredPlanID)
}

// ByStatus filters by the status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByToken filters password reset tokens
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// SearchProfiles matches nome or email, case-insensitive
type SearchProfiles struct {
	Query string
}

func (s SearchProfiles) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Query + "%"
	return db.Where("nome ILIKE ? OR email ILIKE ?", like, like)
}
