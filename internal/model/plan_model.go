package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:nome_plano;type:varchar(255);not null"`
	Description *string   `gorm:"column:descricao;type:text"`
	Price       float64   `gorm:"column:preco;type:decimal(10,2);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Plan) TableName() string {
	return "planos"
}

type AcquiredPlan struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId       uuid.UUID `gorm:"column:cliente_id;type:uuid;not null;index"`
	PlanId         uuid.UUID `gorm:"column:plano_id;type:uuid;not null;index"`
	WalletId       string    `gorm:"column:id_carteira;type:varchar(10);not null"`
	Status         string    `gorm:"column:status_plano;type:plan_status;default:'ativo'"`
	WithdrawalType string    `gorm:"column:tipo_saque;type:withdrawal_type;not null"`
	AcquiredAt     time.Time `gorm:"column:data_aquisicao;default:now()"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Plan *Plan `gorm:"foreignKey:PlanId"`
}

func (AcquiredPlan) TableName() string {
	return "planos_adquiridos"
}

// WalletSequence backs the per-client monotonic wallet id counter. Assignment
// increments last_value under the acquisition transaction, which closes the
// read-then-insert race the legacy client had.
type WalletSequence struct {
	ClientId  uuid.UUID `gorm:"column:cliente_id;type:uuid;primaryKey"`
	LastValue int       `gorm:"column:last_value;not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (WalletSequence) TableName() string {
	return "wallet_sequences"
}
