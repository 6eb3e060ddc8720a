package mapper

import (
	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PlanMapper) AcquiredToEntity(a *model.AcquiredPlan) *entity.AcquiredPlan {
	if a == nil {
		return nil
	}
	return &entity.AcquiredPlan{
		Id:             a.Id,
		ClientId:       a.ClientId,
		PlanId:         a.PlanId,
		WalletId:       a.WalletId,
		Status:         entity.PlanStatus(a.Status),
		WithdrawalType: entity.WithdrawalType(a.WithdrawalType),
		AcquiredAt:     a.AcquiredAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Plan:           m.ToEntity(a.Plan),
	}
}

func (m *PlanMapper) AcquiredToModel(a *entity.AcquiredPlan) *model.AcquiredPlan {
	if a == nil {
		return nil
	}
	return &model.AcquiredPlan{
		Id:             a.Id,
		ClientId:       a.ClientId,
		PlanId:         a.PlanId,
		WalletId:       a.WalletId,
		Status:         string(a.Status),
		WithdrawalType: string(a.WithdrawalType),
		AcquiredAt:     a.AcquiredAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
