package dashboard

import (
	"context"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/pkg/logger"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
)

// Aggregator computes the back-office dashboard counters.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.DashboardStatsResponse, error) {
	traderCount, err := uow.ProfileRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	activeAcquisitions, err := uow.AcquiredPlanRepository().Count(ctx,
		specification.Filter("status_plano", string(entity.PlanStatusActive)))
	if err != nil {
		return nil, err
	}

	pendingRequests, err := uow.RequestRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.RequestStatusPending)})
	if err != nil {
		return nil, err
	}

	pendingDocuments, err := uow.DocumentRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.DocumentStatusPending)})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TraderCount:        traderCount,
		ActiveAcquisitions: activeAcquisitions,
		PendingRequests:    pendingRequests,
		PendingDocuments:   pendingDocuments,
	}, nil
}
