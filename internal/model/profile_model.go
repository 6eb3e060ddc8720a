package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile keeps the legacy column names from the hosted schema.
type Profile struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email             string     `gorm:"type:varchar(255);not null"`
	Name              string     `gorm:"column:nome;type:varchar(255);not null"`
	Cpf               *string    `gorm:"column:cpf;type:varchar(11)"`
	Phone             *string    `gorm:"column:telefone;type:varchar(20)"`
	BirthDate         *time.Time `gorm:"column:data_nascimento;type:date"`
	Cep               *string    `gorm:"column:cep;type:varchar(9)"`
	Street            *string    `gorm:"column:rua_bairro;type:text"`
	HouseNumber       *string    `gorm:"column:numero_residencial;type:varchar(20)"`
	City              *string    `gorm:"column:cidade;type:varchar(100)"`
	State             *string    `gorm:"column:estado;type:varchar(2)"`
	ProfilePicture    *string    `gorm:"column:foto_perfil;type:text"`
	PaymentActive     bool       `gorm:"column:pagamento_ativo;default:false"`
	PlatformStatus    *string    `gorm:"column:status_plataforma;type:varchar(50)"`
	DocumentsComplete bool       `gorm:"column:documentos_completos;default:false"`
	CustomNotes       *string    `gorm:"column:informacoes_personalizadas;type:text"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
