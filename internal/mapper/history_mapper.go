package mapper

import (
	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.HistoryEntry) *entity.HistoryEntry {
	if h == nil {
		return nil
	}
	e := &entity.HistoryEntry{
		Id:               h.Id,
		AcquiredPlanId:   h.AcquiredPlanId,
		ServiceRequestId: h.ServiceRequestId,
		Note:             h.Note,
		RequestedAmount:  h.RequestedAmount,
		FinalAmount:      h.FinalAmount,
		AttachmentRef:    h.AttachmentRef,
		CreatedAt:        h.CreatedAt,
	}
	if h.EventType != nil {
		e.EventType = entity.EventType(*h.EventType)
	}
	if h.Status != nil {
		e.Status = entity.RequestStatus(*h.Status)
	}
	if h.Origin != nil {
		e.Origin = entity.EventOrigin(*h.Origin)
	}
	return e
}

func (m *HistoryMapper) ToModel(h *entity.HistoryEntry) *model.HistoryEntry {
	if h == nil {
		return nil
	}
	mdl := &model.HistoryEntry{
		Id:               h.Id,
		AcquiredPlanId:   h.AcquiredPlanId,
		ServiceRequestId: h.ServiceRequestId,
		Note:             h.Note,
		RequestedAmount:  h.RequestedAmount,
		FinalAmount:      h.FinalAmount,
		AttachmentRef:    h.AttachmentRef,
		CreatedAt:        h.CreatedAt,
	}
	if h.EventType != "" {
		v := string(h.EventType)
		mdl.EventType = &v
	}
	if h.Status != "" {
		v := string(h.Status)
		mdl.Status = &v
	}
	if h.Origin != "" {
		v := string(h.Origin)
		mdl.Origin = &v
	}
	return mdl
}
