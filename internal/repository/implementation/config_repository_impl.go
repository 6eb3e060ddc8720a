package implementation

import (
	"context"
	"errors"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/mapper"
	"traderhub-be/internal/model"
	"traderhub-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConfigMapper
}

func NewConfigRepository(db *gorm.DB) contract.ConfigRepository {
	return &ConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewConfigMapper(),
	}
}

func (r *ConfigRepositoryImpl) Upsert(ctx context.Context, key, value string) (*entity.PlatformConfig, error) {
	m := &model.PlatformConfig{
		Key:   key,
		Value: value,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *ConfigRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlatformConfig{}).Error
}

func (r *ConfigRepositoryImpl) FindByKey(ctx context.Context, key string) (*entity.PlatformConfig, error) {
	var m model.PlatformConfig
	err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConfigRepositoryImpl) FindAll(ctx context.Context) ([]*entity.PlatformConfig, error) {
	var models []*model.PlatformConfig
	if err := r.db.WithContext(ctx).Order("config_key ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PlatformConfig, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
