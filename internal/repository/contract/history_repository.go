package contract

import (
	"context"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"
)

type HistoryRepository interface {
	// Create appends one entry. There is no Update or Delete: the timeline
	// is append-only.
	Create(ctx context.Context, entry *entity.HistoryEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
