package mapper

import (
	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.UserDocument) *entity.UserDocument {
	if d == nil {
		return nil
	}
	return &entity.UserDocument{
		Id:          d.Id,
		UserId:      d.UserId,
		Kind:        entity.DocumentKind(d.Kind),
		StoragePath: d.StoragePath,
		Status:      entity.DocumentStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.UserDocument) *model.UserDocument {
	if d == nil {
		return nil
	}
	return &model.UserDocument{
		Id:          d.Id,
		UserId:      d.UserId,
		Kind:        string(d.Kind),
		StoragePath: d.StoragePath,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
