package contract

import (
	"context"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.UserDocument) error
	Update(ctx context.Context, doc *entity.UserDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
