package model

import (
	"time"

	"github.com/google/uuid"
)

type UserDocument struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Kind        string    `gorm:"column:tipo_documento;type:varchar(50);not null"`
	StoragePath string    `gorm:"column:arquivo_url;type:text;not null"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'pendente'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (UserDocument) TableName() string {
	return "user_documents"
}
