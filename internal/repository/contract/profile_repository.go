package contract

import (
	"context"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	SetDocumentsComplete(ctx context.Context, userId uuid.UUID, complete bool) error
	UpdateProfilePicture(ctx context.Context, userId uuid.UUID, path string) error
}
