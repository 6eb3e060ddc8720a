package service

import (
	"context"
	"testing"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDescription(t *testing.T) {
	amount := 1234.56

	t.Run("full withdrawal dialog", func(t *testing.T) {
		req := &dto.CreateRequestRequest{
			HolderName: "João da Silva",
			HolderCpf:  "52998224725",
			Amount:     &amount,
			PixKey:     "joao@example.com",
		}
		got := buildDescription(req)
		assert.NotNil(t, got)
		assert.Equal(t, "Titular: João da Silva - CPF: 52998224725 - Valor: R$ 1.234,56 - Chave PIX: joao@example.com", *got)
	})

	t.Run("free text only", func(t *testing.T) {
		req := &dto.CreateRequestRequest{Description: "Preciso de uma segunda chance"}
		got := buildDescription(req)
		assert.NotNil(t, got)
		assert.Equal(t, "Preciso de uma segunda chance", *got)
	})

	t.Run("dialog fields plus free text", func(t *testing.T) {
		req := &dto.CreateRequestRequest{
			HolderName:  "Maria",
			Description: "saque parcial",
		}
		got := buildDescription(req)
		assert.NotNil(t, got)
		assert.Equal(t, "Titular: Maria - saque parcial", *got)
	})

	t.Run("empty request yields nil", func(t *testing.T) {
		assert.Nil(t, buildDescription(&dto.CreateRequestRequest{}))
	})
}

func newRequestServiceForTest() (IRequestService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	svc := NewRequestService(&fakeUowFactory{uow: uow}, fakeEmailService{}, nil, nil)
	return svc, uow
}

func TestRespondRequestWritesHistoryEntry(t *testing.T) {
	svc, uow := newRequestServiceForTest()

	userId := uuid.New()
	planId := uuid.New()
	requestId := uuid.New()
	uow.requestRepo.requests[requestId] = &entity.ServiceRequest{
		Id:             requestId,
		UserId:         userId,
		AcquiredPlanId: &planId,
		Type:           entity.RequestTypeWithdrawal,
		Status:         entity.RequestStatusPending,
		CreatedAt:      time.Now(),
	}
	uow.profileRepo.profiles[userId] = &entity.Profile{
		Id:    userId,
		Email: "trader@example.com",
		Name:  "Trader",
	}

	finalAmount := 950.50
	res, err := svc.RespondRequest(context.Background(), uuid.New(), &dto.RespondRequestRequest{
		Id:            requestId,
		Status:        "aprovado",
		AdminResponse: "Saque aprovado",
		FinalAmount:   &finalAmount,
	})
	require.NoError(t, err)
	assert.Equal(t, "aprovado", res.Status)
	assert.Empty(t, res.Warning)

	updated := uow.requestRepo.requests[requestId]
	assert.Equal(t, entity.RequestStatusApproved, updated.Status)
	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "Saque aprovado", *updated.AdminResponse)
	assert.NotNil(t, updated.AnsweredAt)

	// the answer and its timeline record land in one transaction
	require.Len(t, uow.historyRepo.entries, 1)
	entry := uow.historyRepo.entries[0]
	assert.Equal(t, planId, entry.AcquiredPlanId)
	assert.Equal(t, entity.OriginAdmin, entry.Origin)
	assert.Equal(t, entity.RequestStatusApproved, entry.Status)
	assert.Equal(t, "Saque aprovado", entry.Note)
	require.NotNil(t, entry.FinalAmount)
	assert.Equal(t, finalAmount, *entry.FinalAmount)
	require.NotNil(t, entry.ServiceRequestId)
	assert.Equal(t, requestId, *entry.ServiceRequestId)

	assert.Equal(t, 1, uow.began)
	assert.Equal(t, 1, uow.committed)
	assert.Equal(t, 0, uow.rolledBack)
}

func TestRespondRequestAlreadyAnswered(t *testing.T) {
	svc, uow := newRequestServiceForTest()

	requestId := uuid.New()
	uow.requestRepo.requests[requestId] = &entity.ServiceRequest{
		Id:     requestId,
		UserId: uuid.New(),
		Type:   entity.RequestTypeWithdrawal,
		Status: entity.RequestStatusApproved,
	}

	_, err := svc.RespondRequest(context.Background(), uuid.New(), &dto.RespondRequestRequest{
		Id:     requestId,
		Status: "recusado",
	})
	require.EqualError(t, err, "request already answered")
	assert.Empty(t, uow.historyRepo.entries)
	assert.Equal(t, 0, uow.began)
}

func TestRespondRequestNotFound(t *testing.T) {
	svc, _ := newRequestServiceForTest()

	_, err := svc.RespondRequest(context.Background(), uuid.New(), &dto.RespondRequestRequest{
		Id:     uuid.New(),
		Status: "aprovado",
	})
	require.EqualError(t, err, "request not found")
}

func TestRequestEventType(t *testing.T) {
	assert.Equal(t, entity.EventTypeSecondChance, requestEventType(entity.RequestTypeSecondChance))
	assert.Equal(t, entity.EventTypeApprovalRequested, requestEventType(entity.RequestTypeApproval))
	assert.Equal(t, entity.EventTypeWithdrawal, requestEventType(entity.RequestTypeWithdrawal))
	assert.Equal(t, entity.EventTypeWithdrawal, requestEventType(entity.RequestTypeBiweeklySwitch))
}
