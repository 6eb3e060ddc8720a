// FILE: internal/entity/platform_config_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlatformConfig struct {
	Id        uuid.UUID
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
