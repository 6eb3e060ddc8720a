package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/audit"
	"traderhub-be/pkg/wallet"

	"github.com/google/uuid"
)

type IPlanService interface {
	CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	ListPlans(ctx context.Context) ([]*dto.PlanResponse, error)

	AssignPlan(ctx context.Context, adminId uuid.UUID, req *dto.AssignPlanRequest) (*dto.AcquiredPlanResponse, error)
	UpdateAcquiredPlan(ctx context.Context, req *dto.UpdateAcquiredPlanRequest) (*dto.AcquiredPlanResponse, error)
	DeleteAcquiredPlan(ctx context.Context, id uuid.UUID) error
	ListAcquisitions(ctx context.Context) ([]*dto.AcquiredPlanListingResponse, error)
	ListClientAcquisitions(ctx context.Context, clientId uuid.UUID) ([]*dto.AcquiredPlanResponse, error)
}

type planService struct {
	uowFactory    unitofwork.RepositoryFactory
	auditRecorder *audit.Recorder
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, auditRecorder *audit.Recorder) IPlanService {
	return &planService{
		uowFactory:    uowFactory,
		auditRecorder: auditRecorder,
	}
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func toAcquiredPlanResponse(a *entity.AcquiredPlan) *dto.AcquiredPlanResponse {
	res := &dto.AcquiredPlanResponse{
		Id:             a.Id,
		ClientId:       a.ClientId,
		PlanId:         a.PlanId,
		WalletId:       a.WalletId,
		Status:         string(a.Status),
		WithdrawalType: string(a.WithdrawalType),
		AcquiredAt:     a.AcquiredAt,
	}
	if a.Plan != nil {
		res.PlanName = a.Plan.Name
		res.PlanPrice = a.Plan.Price
	}
	return res
}

func (s *planService) CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan := &entity.Plan{
		Id:        uuid.New(),
		Name:      req.Name,
		Price:     req.Price,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if req.Description != "" {
		plan.Description = &req.Description
	}

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *planService) UpdatePlan(ctx context.Context, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	plan.Name = req.Name
	plan.Price = req.Price
	if req.Description != "" {
		plan.Description = &req.Description
	}
	plan.UpdatedAt = time.Now()

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *planService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.PlanRepository().CountAcquisitions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("cannot delete plan: %d acquisition(s) reference it", count)
	}

	return uow.PlanRepository().Delete(ctx, id)
}

func (s *planService) ListPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanResponse, len(plans))
	for i, p := range plans {
		res[i] = toPlanResponse(p)
	}
	return res, nil
}

func (s *planService) AssignPlan(ctx context.Context, adminId uuid.UUID, req *dto.AssignPlanRequest) (*dto.AcquiredPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	client, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: req.ClientId})
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	status := entity.PlanStatusActive
	if req.Status != "" {
		status = entity.PlanStatus(req.Status)
	}
	withdrawalType := entity.WithdrawalMonthly
	if req.WithdrawalType != "" {
		withdrawalType = entity.WithdrawalType(req.WithdrawalType)
	}

	// The wallet sequence increment and the acquisition insert share the
	// transaction, so two concurrent assignments cannot mint the same id.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	next, err := uow.AcquiredPlanRepository().NextWalletValue(ctx, req.ClientId)
	if err != nil {
		return nil, err
	}

	acquired := &entity.AcquiredPlan{
		Id:             uuid.New(),
		ClientId:       req.ClientId,
		PlanId:         req.PlanId,
		WalletId:       wallet.Format(next),
		Status:         status,
		WithdrawalType: withdrawalType,
		AcquiredAt:     time.Now(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uow.AcquiredPlanRepository().Create(ctx, acquired); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.auditRecorder != nil {
		s.auditRecorder.LogPlanAssigned(adminId, req.ClientId, acquired.WalletId)
	}

	acquired.Plan = plan
	return toAcquiredPlanResponse(acquired), nil
}

func (s *planService) UpdateAcquiredPlan(ctx context.Context, req *dto.UpdateAcquiredPlanRequest) (*dto.AcquiredPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	acquired, err := uow.AcquiredPlanRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if acquired == nil {
		return nil, errors.New("acquired plan not found")
	}

	if req.Status != "" {
		acquired.Status = entity.PlanStatus(req.Status)
	}
	if req.WithdrawalType != "" {
		acquired.WithdrawalType = entity.WithdrawalType(req.WithdrawalType)
	}
	acquired.UpdatedAt = time.Now()

	if err := uow.AcquiredPlanRepository().Update(ctx, acquired); err != nil {
		return nil, err
	}
	return toAcquiredPlanResponse(acquired), nil
}

func (s *planService) DeleteAcquiredPlan(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AcquiredPlanRepository().Delete(ctx, id)
}

func (s *planService) ListAcquisitions(ctx context.Context) ([]*dto.AcquiredPlanListingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	listings, err := uow.AcquiredPlanRepository().FindListings(ctx,
		specification.OrderBy{Field: "id_carteira"},
		specification.OrderBy{Field: "planos_adquiridos.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AcquiredPlanListingResponse, len(listings))
	for i, l := range listings {
		item := &dto.AcquiredPlanListingResponse{
			AcquiredPlanResponse: *toAcquiredPlanResponse(&l.AcquiredPlan),
			ClientName:           l.ClientName,
			ClientEmail:          l.ClientEmail,
		}
		item.PlanName = l.PlanName
		item.PlanPrice = l.PlanPrice
		res[i] = item
	}
	return res, nil
}

func (s *planService) ListClientAcquisitions(ctx context.Context, clientId uuid.UUID) ([]*dto.AcquiredPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	acquisitions, err := uow.AcquiredPlanRepository().FindAll(ctx,
		specification.ByClientID{ClientID: clientId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AcquiredPlanResponse, len(acquisitions))
	for i, a := range acquisitions {
		res[i] = toAcquiredPlanResponse(a)
	}
	return res, nil
}
