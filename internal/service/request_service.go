package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/pkg/mailer"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/internal/websocket"
	"traderhub-be/pkg/audit"
	"traderhub-be/pkg/timeline"

	"github.com/google/uuid"
)

type IRequestService interface {
	CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateRequestRequest) (*dto.CreateRequestResponse, error)
	RespondRequest(ctx context.Context, adminId uuid.UUID, req *dto.RespondRequestRequest) (*dto.RespondRequestResponse, error)
	ListRequests(ctx context.Context, req *dto.ListRequestsRequest) ([]*dto.RequestListingResponse, error)
	ListUserRequests(ctx context.Context, userId uuid.UUID) ([]*dto.RequestResponse, error)
}

type requestService struct {
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	hub           *websocket.Hub
	auditRecorder *audit.Recorder
}

func NewRequestService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	hub *websocket.Hub,
	auditRecorder *audit.Recorder,
) IRequestService {
	return &requestService{
		uowFactory:    uowFactory,
		emailService:  emailService,
		hub:           hub,
		auditRecorder: auditRecorder,
	}
}

func toRequestResponse(r *entity.ServiceRequest) *dto.RequestResponse {
	return &dto.RequestResponse{
		Id:             r.Id,
		UserId:         r.UserId,
		AcquiredPlanId: r.AcquiredPlanId,
		Type:           string(r.Type),
		Description:    r.Description,
		Status:         string(r.Status),
		AdminResponse:  r.AdminResponse,
		AnsweredAt:     r.AnsweredAt,
		CreatedAt:      r.CreatedAt,
	}
}

// buildDescription folds the withdrawal dialog fields into the free-text
// description the admins read.
func buildDescription(req *dto.CreateRequestRequest) *string {
	parts := []string{}
	if req.HolderName != "" {
		parts = append(parts, "Titular: "+req.HolderName)
	}
	if req.HolderCpf != "" {
		parts = append(parts, "CPF: "+req.HolderCpf)
	}
	if req.Amount != nil {
		parts = append(parts, "Valor: "+timeline.FormatBRL(req.Amount))
	}
	if req.PixKey != "" {
		parts = append(parts, "Chave PIX: "+req.PixKey)
	}
	if req.Description != "" {
		parts = append(parts, req.Description)
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " - ")
	return &joined
}

func requestEventType(t entity.RequestType) entity.EventType {
	switch t {
	case entity.RequestTypeSecondChance:
		return entity.EventTypeSecondChance
	case entity.RequestTypeApproval:
		return entity.EventTypeApprovalRequested
	default:
		return entity.EventTypeWithdrawal
	}
}

func (s *requestService) CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateRequestRequest) (*dto.CreateRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requestType := entity.RequestType(req.Type)

	// Plan-scoped requests must point at a plan the caller owns.
	if req.AcquiredPlanId != nil {
		acquired, err := uow.AcquiredPlanRepository().FindOne(ctx, specification.ByID{ID: *req.AcquiredPlanId})
		if err != nil {
			return nil, err
		}
		if acquired == nil || acquired.ClientId != userId {
			return nil, errors.New("acquired plan not found")
		}
	} else if requestType == entity.RequestTypeWithdrawal || requestType == entity.RequestTypeSecondChance {
		return nil, errors.New("acquired plan is required for this request type")
	}

	request := &entity.ServiceRequest{
		Id:             uuid.New(),
		UserId:         userId,
		AcquiredPlanId: req.AcquiredPlanId,
		Type:           requestType,
		Description:    buildDescription(req),
		Status:         entity.RequestStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	// Plan-scoped requests open their timeline entry immediately, so the
	// trader sees the pending ask on the plan feed.
	if req.AcquiredPlanId != nil {
		note := ""
		if request.Description != nil {
			note = *request.Description
		}
		entry := &entity.HistoryEntry{
			Id:               uuid.New(),
			AcquiredPlanId:   *req.AcquiredPlanId,
			ServiceRequestId: &request.Id,
			EventType:        requestEventType(requestType),
			Note:             note,
			RequestedAmount:  req.Amount,
			Status:           entity.RequestStatusPending,
			Origin:           entity.OriginSystem,
			CreatedAt:        time.Now(),
		}
		if err := uow.HistoryRepository().Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.auditRecorder != nil {
		switch requestType {
		case entity.RequestTypeWithdrawal, entity.RequestTypeBiweeklySwitch:
			s.auditRecorder.LogWithdrawalRequest(userId, request.Id, req.Amount)
		case entity.RequestTypeSecondChance:
			s.auditRecorder.LogSecondChanceRequest(userId, request.Id, req.AcquiredPlanId)
		default:
			s.auditRecorder.LogRequestCreated(userId, request.Id, string(requestType))
		}
	}

	return &dto.CreateRequestResponse{Id: request.Id}, nil
}

func (s *requestService) RespondRequest(ctx context.Context, adminId uuid.UUID, req *dto.RespondRequestRequest) (*dto.RespondRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, errors.New("request not found")
	}
	if request.Status != entity.RequestStatusPending {
		return nil, errors.New("request already answered")
	}

	now := time.Now()
	status := entity.RequestStatus(req.Status)

	request.Status = status
	request.AnsweredAt = &now
	request.AnsweredBy = &adminId
	request.UpdatedAt = now
	if req.AdminResponse != "" {
		request.AdminResponse = &req.AdminResponse
	}

	// The request update and its history entry commit together. A reader
	// never sees an answered request without its timeline record, or the
	// record without the answer.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if request.AcquiredPlanId != nil {
		entry := &entity.HistoryEntry{
			Id:               uuid.New(),
			AcquiredPlanId:   *request.AcquiredPlanId,
			ServiceRequestId: &request.Id,
			EventType:        requestEventType(request.Type),
			Note:             req.AdminResponse,
			FinalAmount:      req.FinalAmount,
			Status:           status,
			Origin:           entity.OriginAdmin,
			CreatedAt:        now,
		}
		if req.ReceiptURL != "" {
			entry.AttachmentRef = &req.ReceiptURL
		}
		if err := uow.HistoryRepository().Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	warning := s.notifyAnswered(ctx, request, req.AdminResponse)

	if s.auditRecorder != nil {
		s.auditRecorder.LogAdminResponse(adminId, request.Id, string(status))
	}

	return &dto.RespondRequestResponse{
		Id:      request.Id,
		Status:  string(status),
		Warning: warning,
	}, nil
}

// notifyAnswered runs the post-commit side effects. They are best-effort:
// any failure comes back as a warning string, never as an error.
func (s *requestService) notifyAnswered(ctx context.Context, request *entity.ServiceRequest, response string) string {
	var warnings []string

	statusLabel := timeline.StatusLabel(request.Status)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: request.UserId})
	if err != nil || profile == nil {
		warnings = append(warnings, "requester profile unavailable, notifications skipped")
	} else {
		go func(email, name string) {
			if emailErr := s.emailService.SendRequestAnswered(email, name, string(request.Type), statusLabel, response); emailErr != nil {
				// goroutine: too late to warn the caller
			}
		}(profile.Email, profile.Name)
	}

	if s.hub != nil {
		s.hub.Send(request.UserId, websocket.Notification{
			Type:        "request_answered",
			Title:       "Solicitação respondida",
			Message:     response,
			RequestId:   request.Id.String(),
			StatusLabel: statusLabel,
			CreatedAt:   time.Now(),
		})
	}

	return strings.Join(warnings, "; ")
}

func (s *requestService) ListRequests(ctx context.Context, req *dto.ListRequestsRequest) ([]*dto.RequestListingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := 0
	if req.Page > 1 {
		offset = (req.Page - 1) * limit
	}

	listings, err := uow.RequestRepository().FindListings(ctx, req.Type, req.Status, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RequestListingResponse, len(listings))
	for i, l := range listings {
		res[i] = &dto.RequestListingResponse{
			RequestResponse: *toRequestResponse(&l.ServiceRequest),
			RequesterName:   l.RequesterName,
			RequesterEmail:  l.RequesterEmail,
		}
	}
	return res, nil
}

func (s *requestService) ListUserRequests(ctx context.Context, userId uuid.UUID) ([]*dto.RequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RequestRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RequestResponse, len(requests))
	for i, r := range requests {
		res[i] = toRequestResponse(r)
	}
	return res, nil
}
