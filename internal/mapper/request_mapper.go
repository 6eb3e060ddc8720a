package mapper

import (
	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
)

type RequestMapper struct{}

func NewRequestMapper() *RequestMapper {
	return &RequestMapper{}
}

func (m *RequestMapper) ToEntity(r *model.ServiceRequest) *entity.ServiceRequest {
	if r == nil {
		return nil
	}
	return &entity.ServiceRequest{
		Id:             r.Id,
		UserId:         r.UserId,
		AcquiredPlanId: r.AcquiredPlanId,
		Type:           entity.RequestType(r.Type),
		Description:    r.Description,
		Status:         entity.RequestStatus(r.Status),
		AdminResponse:  r.AdminResponse,
		AnsweredAt:     r.AnsweredAt,
		AnsweredBy:     r.AnsweredBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *RequestMapper) ToModel(r *entity.ServiceRequest) *model.ServiceRequest {
	if r == nil {
		return nil
	}
	return &model.ServiceRequest{
		Id:             r.Id,
		UserId:         r.UserId,
		AcquiredPlanId: r.AcquiredPlanId,
		Type:           string(r.Type),
		Description:    r.Description,
		Status:         string(r.Status),
		AdminResponse:  r.AdminResponse,
		AnsweredAt:     r.AnsweredAt,
		AnsweredBy:     r.AnsweredBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
