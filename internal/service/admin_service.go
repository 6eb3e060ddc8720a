package service

import (
	"context"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/admin/dashboard"
	"traderhub-be/pkg/admin/trader"
	"traderhub-be/pkg/audit"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListTraders(ctx context.Context, req *dto.TraderListRequest) ([]*dto.TraderListResponse, error)
	UpdateTrader(ctx context.Context, adminId uuid.UUID, req *dto.AdminUpdateTraderRequest) (*dto.ProfileResponse, error)
	DeleteTrader(ctx context.Context, adminId, traderId uuid.UUID) error
	CreateAdmin(ctx context.Context, creatorId uuid.UUID, req *dto.AdminCreateAdminRequest) (*dto.AdminCreateAdminResponse, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	ExportBackup(ctx context.Context, adminId uuid.UUID) (*dto.SystemBackupResponse, error)
	GetSystemLogs(ctx context.Context, req *dto.SystemLogListRequest) (*dto.SystemLogListResponse, error)
}

type adminService struct {
	uowFactory    unitofwork.RepositoryFactory
	traderManager *trader.Manager
	dashboard     *dashboard.Aggregator
	auditRecorder *audit.Recorder
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	traderManager *trader.Manager,
	dashboardAggregator *dashboard.Aggregator,
	auditRecorder *audit.Recorder,
) IAdminService {
	return &adminService{
		uowFactory:    uowFactory,
		traderManager: traderManager,
		dashboard:     dashboardAggregator,
		auditRecorder: auditRecorder,
	}
}

func (s *adminService) ListTraders(ctx context.Context, req *dto.TraderListRequest) ([]*dto.TraderListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.traderManager.FindAll(ctx, uow, req.Page, req.Limit, req.Search)
}

func (s *adminService) UpdateTrader(ctx context.Context, adminId uuid.UUID, req *dto.AdminUpdateTraderRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.traderManager.Update(ctx, uow, adminId, *req)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile, ""), nil
}

func (s *adminService) DeleteTrader(ctx context.Context, adminId, traderId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.traderManager.Delete(ctx, uow, adminId, traderId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.auditRecorder != nil {
		s.auditRecorder.LogTraderDeleted(adminId, traderId)
	}
	return nil
}

func (s *adminService) CreateAdmin(ctx context.Context, creatorId uuid.UUID, req *dto.AdminCreateAdminRequest) (*dto.AdminCreateAdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := s.traderManager.CreateAdmin(ctx, uow, creatorId, *req)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.auditRecorder != nil {
		s.auditRecorder.LogAdminCreated(creatorId, user.Id, user.Email)
	}

	return &dto.AdminCreateAdminResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboard.GetStats(ctx, uow)
}

// ExportBackup dumps profiles, acquisitions and platform config into one
// envelope the admin screen saves as a JSON file.
func (s *adminService) ExportBackup(ctx context.Context, adminId uuid.UUID) (*dto.SystemBackupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	acquired, err := uow.AcquiredPlanRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	configs, err := uow.ConfigRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	backup := &dto.SystemBackupResponse{
		Timestamp:      time.Now().UTC(),
		Profiles:       make([]*dto.ProfileResponse, 0, len(profiles)),
		AcquiredPlans:  make([]*dto.AcquiredPlanResponse, 0, len(acquired)),
		PlatformConfig: make([]*dto.ConfigResponse, 0, len(configs)),
	}
	for _, p := range profiles {
		backup.Profiles = append(backup.Profiles, toProfileResponse(p, ""))
	}
	for _, a := range acquired {
		backup.AcquiredPlans = append(backup.AcquiredPlans, toAcquiredPlanResponse(a))
	}
	for _, c := range configs {
		backup.PlatformConfig = append(backup.PlatformConfig, toConfigResponse(c))
	}

	if s.auditRecorder != nil {
		s.auditRecorder.LogBackupExported(adminId, len(backup.Profiles), len(backup.AcquiredPlans), len(backup.PlatformConfig))
	}
	return backup, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, req *dto.SystemLogListRequest) (*dto.SystemLogListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Expired rows are purged opportunistically before reading.
	if _, err := uow.SystemLogRepository().DeleteExpired(ctx); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := 0
	if req.Page > 1 {
		offset = (req.Page - 1) * limit
	}

	entries, err := uow.SystemLogRepository().FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uow.SystemLogRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	logs := make([]dto.SystemLogResponse, 0, len(entries))
	for _, e := range entries {
		if req.Level != "" {
			if level, _ := e.Data["level"].(string); level != req.Level {
				continue
			}
		}
		logs = append(logs, dto.SystemLogResponse{
			Id:        e.Id,
			Data:      e.Data,
			CreatedAt: e.CreatedAt,
		})
	}

	return &dto.SystemLogListResponse{Logs: logs, Total: total}, nil
}
