package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemLog rows carry the audit payload as JSONB and expire after a fixed
// retention window; expired rows are purged opportunistically on write.
type SystemLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LogData   datatypes.JSON `gorm:"column:log_data;type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"default:now();not null;index"`
	ExpiresAt time.Time      `gorm:"not null;index"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
