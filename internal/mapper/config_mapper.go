package mapper

import (
	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
)

type ConfigMapper struct{}

func NewConfigMapper() *ConfigMapper {
	return &ConfigMapper{}
}

func (m *ConfigMapper) ToEntity(c *model.PlatformConfig) *entity.PlatformConfig {
	if c == nil {
		return nil
	}
	return &entity.PlatformConfig{
		Id:        c.Id,
		Key:       c.Key,
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ConfigMapper) ToModel(c *entity.PlatformConfig) *model.PlatformConfig {
	if c == nil {
		return nil
	}
	return &model.PlatformConfig{
		Id:        c.Id,
		Key:       c.Key,
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
