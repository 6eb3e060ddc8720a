package timeline

import (
	"testing"
	"time"

	"traderhub-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func s(v string) *string { return &v }

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "-", FormatBRL(nil))
	// zero means the value was never filled in
	assert.Equal(t, "-", FormatBRL(f(0)))
	assert.Equal(t, "R$ 150,00", FormatBRL(f(150)))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(f(1234.56)))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pendente", StatusLabel(entity.RequestStatusPending))
	assert.Equal(t, "Aprovado", StatusLabel(entity.RequestStatusApproved))
	assert.Equal(t, "Efetuado", StatusLabel(entity.RequestStatusExecuted))
	assert.Equal(t, "Negado - Fora do ciclo", StatusLabel(entity.RequestStatusRefused))
	assert.Equal(t, "Negado - Sem saldo", StatusLabel(entity.RequestStatusDenied))

	// unmapped values pass through
	assert.Equal(t, "atendida", StatusLabel(entity.RequestStatusServed))
}

func TestBuildDisplayText(t *testing.T) {
	entries := []*entity.HistoryEntry{
		{
			Id:        uuid.New(),
			EventType: entity.EventTypeApprovalRequested,
			Note:      "Observação manual",
		},
		{
			Id:        uuid.New(),
			EventType: entity.EventTypeApprovalRequested,
		},
	}

	items := Build(entries)
	assert.Len(t, items, 2)
	assert.Equal(t, "Observação manual", items[0].DisplayText)
	assert.Equal(t, "Aprovação solicitada", items[1].DisplayText)
}

func TestBuildSuppression(t *testing.T) {
	visible := &entity.HistoryEntry{
		Id:              uuid.New(),
		EventType:       entity.EventTypeWithdrawal,
		RequestedAmount: f(500),
	}
	// saque has no event label; without note, amounts or attachment the
	// entry renders empty and is dropped
	empty := &entity.HistoryEntry{
		Id:        uuid.New(),
		EventType: entity.EventTypeWithdrawal,
	}
	// a zero amount counts as unset, so this entry is as empty as the one above
	zeroAmount := &entity.HistoryEntry{
		Id:              uuid.New(),
		EventType:       entity.EventTypeWithdrawal,
		RequestedAmount: f(0),
	}
	attachmentOnly := &entity.HistoryEntry{
		Id:            uuid.New(),
		EventType:     entity.EventTypeWithdrawal,
		AttachmentRef: s("documentos/user/comprovante.pdf"),
	}

	items := Build([]*entity.HistoryEntry{visible, empty, zeroAmount, attachmentOnly})
	assert.Len(t, items, 2)
	assert.Equal(t, visible.Id, items[0].Id)
	assert.Equal(t, attachmentOnly.Id, items[1].Id)
	assert.True(t, items[1].HasAttachment)
}

func TestBuildAmountsAndOrder(t *testing.T) {
	now := time.Now()
	entries := []*entity.HistoryEntry{
		{
			Id:              uuid.New(),
			Note:            "Saque aprovado",
			RequestedAmount: f(1000),
			FinalAmount:     f(950.50),
			Status:          entity.RequestStatusApproved,
			Origin:          entity.OriginAdmin,
			CreatedAt:       now,
		},
		{
			Id:        uuid.New(),
			Note:      "Plano criado",
			Origin:    entity.OriginSystem,
			CreatedAt: now.Add(-time.Hour),
		},
	}

	items := Build(entries)
	assert.Len(t, items, 2)
	assert.Equal(t, "R$ 1.000,00", items[0].RequestedAmount)
	assert.Equal(t, "R$ 950,50", items[0].FinalAmount)
	assert.Equal(t, "Aprovado", items[0].StatusLabel)
	assert.Equal(t, "admin", items[0].Origin)
	assert.Equal(t, "-", items[1].RequestedAmount)
	assert.Equal(t, "-", items[1].FinalAmount)
	// input order (newest first) is preserved
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))
}
