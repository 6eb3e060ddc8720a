package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	AcquiredPlanId *uuid.UUID `gorm:"column:plano_adquirido_id;type:uuid;index"`
	Type           string     `gorm:"column:tipo_solicitacao;type:varchar(50);not null"`
	Description    *string    `gorm:"column:descricao;type:text"`
	Status         string     `gorm:"column:status;type:varchar(50);not null;default:'pendente'"`
	AdminResponse  *string    `gorm:"column:resposta_admin;type:text"`
	AnsweredAt     *time.Time `gorm:"column:atendida_em"`
	AnsweredBy     *uuid.UUID `gorm:"column:atendida_por;type:uuid"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "solicitacoes"
}
