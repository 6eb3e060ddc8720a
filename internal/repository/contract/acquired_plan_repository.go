package contract

import (
	"context"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AcquiredPlanRepository interface {
	Create(ctx context.Context, acquired *entity.AcquiredPlan) error
	Update(ctx context.Context, acquired *entity.AcquiredPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AcquiredPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AcquiredPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindListings joins client profile and plan for the admin screen.
	FindListings(ctx context.Context, specs ...specification.Specification) ([]*entity.AcquiredPlanListing, error)

	// NextWalletValue atomically increments the client's wallet sequence and
	// returns the new value. The sequence row is created on first use, seeded
	// from the client's most recent legacy wallet id. Must run inside the
	// acquisition transaction.
	NextWalletValue(ctx context.Context, clientId uuid.UUID) (int, error)
}
