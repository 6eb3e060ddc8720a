package model

import (
	"time"

	"github.com/google/uuid"
)

type HistoryEntry struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AcquiredPlanId   uuid.UUID  `gorm:"column:plano_adquirido_id;type:uuid;not null;index"`
	ServiceRequestId *uuid.UUID `gorm:"column:solicitacao_id;type:uuid;index"`
	EventType        *string    `gorm:"column:tipo_evento;type:varchar(50)"`
	Note             string     `gorm:"column:observacao;type:text;not null"`
	RequestedAmount  *float64   `gorm:"column:valor_solicitado;type:decimal(10,2)"`
	FinalAmount      *float64   `gorm:"column:valor_final;type:decimal(10,2)"`
	AttachmentRef    *string    `gorm:"column:comprovante_url;type:text"`
	Status           *string    `gorm:"column:status_evento;type:varchar(50)"`
	Origin           *string    `gorm:"column:origem;type:varchar(20)"`
	CreatedAt        time.Time  `gorm:"default:now();index"`
}

func (HistoryEntry) TableName() string {
	return "historico_observacoes"
}
