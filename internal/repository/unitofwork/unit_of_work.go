package unitofwork

import (
	"context"

	"traderhub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	PlanRepository() contract.PlanRepository
	AcquiredPlanRepository() contract.AcquiredPlanRepository
	RequestRepository() contract.RequestRepository
	HistoryRepository() contract.HistoryRepository
	DocumentRepository() contract.DocumentRepository
	ConfigRepository() contract.ConfigRepository
	SystemLogRepository() contract.SystemLogRepository
}
