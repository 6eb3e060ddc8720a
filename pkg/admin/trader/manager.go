package trader

import (
	"context"
	"fmt"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/pkg/logger"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
	adminEvents "traderhub-be/pkg/admin/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Manager handles trader-related admin operations.
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// FindAll lists trader profiles with optional search, newest first.
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, page, limit int, search string) ([]*dto.TraderListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if search != "" {
		specs = append([]specification.Specification{specification.SearchProfiles{Query: search}}, specs...)
	}

	profiles, err := uow.ProfileRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TraderListResponse, len(profiles))
	for i, p := range profiles {
		role := string(entity.RoleClient)
		if userRole, err := uow.UserRepository().FindRoleByUserId(ctx, p.Id); err == nil && userRole != nil {
			role = string(userRole.Role)
		}
		res[i] = &dto.TraderListResponse{
			Id:                p.Id,
			Name:              p.Name,
			Email:             p.Email,
			Role:              role,
			PaymentActive:     p.PaymentActive,
			PlatformStatus:    p.PlatformStatus,
			DocumentsComplete: p.DocumentsComplete,
			CreatedAt:         p.CreatedAt,
		}
	}
	return res, nil
}

// Update patches the admin-editable profile fields.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, adminId uuid.UUID, req dto.AdminUpdateTraderRequest) (*entity.Profile, error) {
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("trader not found")
	}

	var changed []string
	if req.Name != "" {
		profile.Name = req.Name
		changed = append(changed, "name")
	}
	if req.Phone != "" {
		profile.Phone = &req.Phone
		changed = append(changed, "phone")
	}
	if req.PaymentActive != nil {
		profile.PaymentActive = *req.PaymentActive
		changed = append(changed, "payment_active")
	}
	if req.PlatformStatus != nil {
		profile.PlatformStatus = req.PlatformStatus
		changed = append(changed, "platform_status")
	}
	if req.CustomNotes != nil {
		profile.CustomNotes = req.CustomNotes
		changed = append(changed, "custom_notes")
	}
	profile.UpdatedAt = time.Now()

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	m.publisher.PublishTraderUpdated(ctx, adminId, profile.Id, changed)
	return profile, nil
}

// Delete removes a trader and everything hanging off the account. Must run
// inside a transaction owned by the caller.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, adminId, traderId uuid.UUID) error {
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: traderId})
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("trader not found")
	}

	acquisitions, err := uow.AcquiredPlanRepository().FindAll(ctx, specification.ByClientID{ClientID: traderId})
	if err != nil {
		return err
	}
	for _, a := range acquisitions {
		if err := uow.AcquiredPlanRepository().Delete(ctx, a.Id); err != nil {
			return err
		}
	}

	requests, err := uow.RequestRepository().FindAll(ctx, specification.ByUserID{UserID: traderId})
	if err != nil {
		return err
	}
	for _, r := range requests {
		if err := uow.RequestRepository().Delete(ctx, r.Id); err != nil {
			return err
		}
	}

	documents, err := uow.DocumentRepository().FindAll(ctx, specification.ByUserID{UserID: traderId})
	if err != nil {
		return err
	}
	for _, d := range documents {
		if err := uow.DocumentRepository().Delete(ctx, d.Id); err != nil {
			return err
		}
	}

	if err := uow.UserRepository().DeleteRolesByUserId(ctx, traderId); err != nil {
		return err
	}
	if err := uow.ProfileRepository().Delete(ctx, traderId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, traderId); err != nil {
		return err
	}

	m.publisher.PublishTraderDeleted(ctx, adminId, traderId)
	m.logger.Warn("ADMIN", "Trader deleted", map[string]interface{}{"trader_id": traderId, "admin_id": adminId})
	return nil
}

// CreateAdmin provisions a new back-office account. Only existing admins
// reach this path; the role check happens at the route.
func (m *Manager) CreateAdmin(ctx context.Context, uow unitofwork.UnitOfWork, creatorId uuid.UUID, req dto.AdminCreateAdminRequest) (*entity.User, error) {
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, fmt.Errorf("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: &hashStr,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.ProfileRepository().Create(ctx, &entity.Profile{
		Id:        user.Id,
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().CreateRole(ctx, &entity.UserRole{
		Id:        uuid.New(),
		UserId:    user.Id,
		Role:      entity.RoleAdmin,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	m.publisher.PublishAdminCreated(ctx, creatorId, user.Id, user.Email)
	return user, nil
}
