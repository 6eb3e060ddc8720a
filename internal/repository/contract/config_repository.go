package contract

import (
	"context"

	"traderhub-be/internal/entity"

	"github.com/google/uuid"
)

type ConfigRepository interface {
	// Upsert writes the value for the key, inserting on first use.
	Upsert(ctx context.Context, key, value string) (*entity.PlatformConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByKey(ctx context.Context, key string) (*entity.PlatformConfig, error)
	FindAll(ctx context.Context) ([]*entity.PlatformConfig, error)
}
