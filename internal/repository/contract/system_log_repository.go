package contract

import (
	"context"
	"time"

	"traderhub-be/internal/entity"
)

type SystemLogRepository interface {
	Create(ctx context.Context, data map[string]interface{}, expiresAt time.Time) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.SystemLogEntry, error)
	Count(ctx context.Context) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
