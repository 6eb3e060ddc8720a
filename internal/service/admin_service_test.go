package service

import (
	"context"
	"testing"
	"time"

	"traderhub-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBackup(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewAdminService(&fakeUowFactory{uow: uow}, nil, nil, nil)

	userId := uuid.New()
	uow.profileRepo.profiles[userId] = &entity.Profile{
		Id:    userId,
		Email: "trader@example.com",
		Name:  "Trader",
	}
	planId := uuid.New()
	uow.acquiredRepo.plans[planId] = &entity.AcquiredPlan{
		Id:             planId,
		ClientId:       userId,
		PlanId:         uuid.New(),
		WalletId:       "001",
		Status:         entity.PlanStatusActive,
		WithdrawalType: entity.WithdrawalMonthly,
		AcquiredAt:     time.Now(),
	}
	uow.configRepo.configs["whatsapp_suporte"] = &entity.PlatformConfig{
		Id:    uuid.New(),
		Key:   "whatsapp_suporte",
		Value: "+5511999999999",
	}

	backup, err := svc.ExportBackup(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, backup.Timestamp.IsZero())

	require.Len(t, backup.Profiles, 1)
	assert.Equal(t, "trader@example.com", backup.Profiles[0].Email)

	require.Len(t, backup.AcquiredPlans, 1)
	assert.Equal(t, "001", backup.AcquiredPlans[0].WalletId)
	assert.Equal(t, "ativo", backup.AcquiredPlans[0].Status)

	require.Len(t, backup.PlatformConfig, 1)
	assert.Equal(t, "whatsapp_suporte", backup.PlatformConfig[0].Key)
}

func TestExportBackupEmptyDatabase(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewAdminService(&fakeUowFactory{uow: uow}, nil, nil, nil)

	backup, err := svc.ExportBackup(context.Background(), uuid.New())
	require.NoError(t, err)

	// empty slices, not nulls, so the exported JSON keeps its shape
	assert.NotNil(t, backup.Profiles)
	assert.Empty(t, backup.Profiles)
	assert.NotNil(t, backup.AcquiredPlans)
	assert.NotNil(t, backup.PlatformConfig)
}
