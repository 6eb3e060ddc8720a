package model

import (
	"time"

	"github.com/google/uuid"
)

type PlatformConfig struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key       string    `gorm:"column:config_key;type:varchar(100);uniqueIndex;not null"`
	Value     string    `gorm:"column:config_value;type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PlatformConfig) TableName() string {
	return "platform_config"
}
