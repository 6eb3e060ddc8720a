package implementation

import (
	"context"
	"encoding/json"
	"time"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
	"traderhub-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, data map[string]interface{}, expiresAt time.Time) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	m := &model.SystemLog{
		LogData:   datatypes.JSON(payload),
		ExpiresAt: expiresAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *SystemLogRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]*entity.SystemLogEntry, error) {
	var models []*model.SystemLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entries := make([]*entity.SystemLogEntry, len(models))
	for i, m := range models {
		var data map[string]interface{}
		if err := json.Unmarshal(m.LogData, &data); err != nil {
			data = map[string]interface{}{"raw": string(m.LogData)}
		}
		entries[i] = &entity.SystemLogEntry{
			Id:        m.Id.String(),
			Data:      data,
			CreatedAt: m.CreatedAt,
			ExpiresAt: m.ExpiresAt,
		}
	}
	return entries, nil
}

func (r *SystemLogRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SystemLog{}).Count(&count).Error
	return count, err
}

func (r *SystemLogRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.SystemLog{})
	return res.RowsAffected, res.Error
}
