package service

import (
	"context"
	"errors"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/storage"
	"traderhub-be/pkg/timeline"

	"github.com/google/uuid"
)

type ITimelineService interface {
	GetTimeline(ctx context.Context, callerId uuid.UUID, isAdmin bool, acquiredPlanId uuid.UUID) ([]*dto.TimelineItemResponse, error)
	GetAttachment(ctx context.Context, callerId uuid.UUID, isAdmin bool, entryId uuid.UUID) (*dto.AttachmentResponse, error)
	CreateEntry(ctx context.Context, req *dto.CreateTimelineEntryRequest) (*dto.CreateTimelineEntryResponse, error)
}

type timelineService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *storage.Resolver
}

func NewTimelineService(uowFactory unitofwork.RepositoryFactory, resolver *storage.Resolver) ITimelineService {
	return &timelineService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// checkPlanAccess confirms the plan exists and, for non-admins, that the
// caller owns it.
func (s *timelineService) checkPlanAccess(ctx context.Context, uow unitofwork.UnitOfWork, callerId uuid.UUID, isAdmin bool, acquiredPlanId uuid.UUID) error {
	acquired, err := uow.AcquiredPlanRepository().FindOne(ctx, specification.ByID{ID: acquiredPlanId})
	if err != nil {
		return err
	}
	if acquired == nil {
		return errors.New("acquired plan not found")
	}
	if !isAdmin && acquired.ClientId != callerId {
		return errors.New("acquired plan not found")
	}
	return nil
}

func (s *timelineService) GetTimeline(ctx context.Context, callerId uuid.UUID, isAdmin bool, acquiredPlanId uuid.UUID) ([]*dto.TimelineItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkPlanAccess(ctx, uow, callerId, isAdmin, acquiredPlanId); err != nil {
		return nil, err
	}

	entries, err := uow.HistoryRepository().FindAll(ctx,
		specification.ByAcquiredPlanID{AcquiredPlanID: acquiredPlanId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := timeline.Build(entries)
	res := make([]*dto.TimelineItemResponse, len(items))
	for i, item := range items {
		res[i] = &dto.TimelineItemResponse{
			Id:              item.Id,
			DisplayText:     item.DisplayText,
			EventType:       item.EventType,
			StatusLabel:     item.StatusLabel,
			RequestedAmount: item.RequestedAmount,
			FinalAmount:     item.FinalAmount,
			Origin:          item.Origin,
			HasAttachment:   item.HasAttachment,
			CreatedAt:       item.CreatedAt,
		}
	}
	return res, nil
}

func (s *timelineService) GetAttachment(ctx context.Context, callerId uuid.UUID, isAdmin bool, entryId uuid.UUID) (*dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.HistoryRepository().FindAll(ctx, specification.ByID{ID: entryId})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("timeline entry not found")
	}
	entry := entries[0]

	if err := s.checkPlanAccess(ctx, uow, callerId, isAdmin, entry.AcquiredPlanId); err != nil {
		return nil, err
	}

	if entry.AttachmentRef == nil || *entry.AttachmentRef == "" {
		return nil, errors.New("entry has no attachment")
	}

	resolution := s.resolver.Resolve(ctx, *entry.AttachmentRef)
	return &dto.AttachmentResponse{
		Kind:      resolution.Kind,
		URL:       resolution.URL,
		Available: resolution.Available,
	}, nil
}

// CreateEntry appends a manual timeline entry, used by the admin back-office.
func (s *timelineService) CreateEntry(ctx context.Context, req *dto.CreateTimelineEntryRequest) (*dto.CreateTimelineEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	acquired, err := uow.AcquiredPlanRepository().FindOne(ctx, specification.ByID{ID: req.AcquiredPlanId})
	if err != nil {
		return nil, err
	}
	if acquired == nil {
		return nil, errors.New("acquired plan not found")
	}

	eventType := entity.EventTypeManual
	if req.EventType != "" {
		eventType = entity.EventType(req.EventType)
	}

	entry := &entity.HistoryEntry{
		Id:              uuid.New(),
		AcquiredPlanId:  req.AcquiredPlanId,
		EventType:       eventType,
		Note:            req.Note,
		RequestedAmount: req.RequestedAmount,
		FinalAmount:     req.FinalAmount,
		Status:          entity.RequestStatus(req.Status),
		Origin:          entity.OriginAdmin,
		CreatedAt:       time.Now(),
	}
	if req.ReceiptURL != "" {
		entry.AttachmentRef = &req.ReceiptURL
	}

	if err := uow.HistoryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}
	return &dto.CreateTimelineEntryResponse{Id: entry.Id}, nil
}
