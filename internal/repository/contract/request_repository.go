package contract

import (
	"context"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	Update(ctx context.Context, request *entity.ServiceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindListings joins the requester profile for the admin screen,
	// newest first.
	FindListings(ctx context.Context, requestType, status string, limit, offset int) ([]*entity.ServiceRequestListing, error)
}
