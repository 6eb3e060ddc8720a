package mapper

import (
	"traderhub-be/internal/entity"
	"traderhub-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:                p.Id,
		Email:             p.Email,
		Name:              p.Name,
		Cpf:               p.Cpf,
		Phone:             p.Phone,
		BirthDate:         p.BirthDate,
		Cep:               p.Cep,
		Street:            p.Street,
		HouseNumber:       p.HouseNumber,
		City:              p.City,
		State:             p.State,
		ProfilePicture:    p.ProfilePicture,
		PaymentActive:     p.PaymentActive,
		PlatformStatus:    p.PlatformStatus,
		DocumentsComplete: p.DocumentsComplete,
		CustomNotes:       p.CustomNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:                p.Id,
		Email:             p.Email,
		Name:              p.Name,
		Cpf:               p.Cpf,
		Phone:             p.Phone,
		BirthDate:         p.BirthDate,
		Cep:               p.Cep,
		Street:            p.Street,
		HouseNumber:       p.HouseNumber,
		City:              p.City,
		State:             p.State,
		ProfilePicture:    p.ProfilePicture,
		PaymentActive:     p.PaymentActive,
		PlatformStatus:    p.PlatformStatus,
		DocumentsComplete: p.DocumentsComplete,
		CustomNotes:       p.CustomNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
