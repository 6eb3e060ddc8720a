package contract

import (
	"context"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)

	// CountAcquisitions reports how many acquired plans reference the plan;
	// deletion is refused while the count is non-zero.
	CountAcquisitions(ctx context.Context, planId uuid.UUID) (int64, error)
}
