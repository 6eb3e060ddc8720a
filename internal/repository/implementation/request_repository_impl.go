package implementation

import (
	"context"
	"errors"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/mapper"
	"traderhub-be/internal/model"
	"traderhub-be/internal/repository/contract"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestMapper
}

func NewRequestRepository(db *gorm.DB) contract.RequestRepository {
	return &RequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestMapper(),
	}
}

func (r *RequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, request *entity.ServiceRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequestRepositoryImpl) Update(ctx context.Context, request *entity.ServiceRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceRequest{}, id).Error
}

func (r *RequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	var m model.ServiceRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error) {
	var models []*model.ServiceRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ServiceRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ServiceRequest{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) FindListings(ctx context.Context, requestType, status string, limit, offset int) ([]*entity.ServiceRequestListing, error) {
	type listingRow struct {
		model.ServiceRequest
		RequesterName  string
		RequesterEmail string
	}

	var rows []*listingRow
	query := r.db.WithContext(ctx).Table("solicitacoes").
		Select(`
			solicitacoes.*,
			profiles.nome as requester_name,
			profiles.email as requester_email
		`).
		Joins("JOIN profiles ON solicitacoes.user_id = profiles.id")

	if requestType != "" {
		query = query.Where("solicitacoes.tipo_solicitacao = ?", requestType)
	}
	if status != "" {
		query = query.Where("solicitacoes.status = ?", status)
	}

	err := query.Order("solicitacoes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]*entity.ServiceRequestListing, len(rows))
	for i, row := range rows {
		listings[i] = &entity.ServiceRequestListing{
			ServiceRequest: *r.mapper.ToEntity(&row.ServiceRequest),
			RequesterName:  row.RequesterName,
			RequesterEmail: row.RequesterEmail,
		}
	}
	return listings, nil
}
