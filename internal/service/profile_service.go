package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/storage"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UploadProfilePicture(ctx context.Context, userId uuid.UUID, file io.Reader, filename, contentType string) (*dto.UploadProfilePictureResponse, error)
}

type profileService struct {
	uowFactory    unitofwork.RepositoryFactory
	storageDriver storage.Driver
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, storageDriver storage.Driver) IProfileService {
	return &profileService{
		uowFactory:    uowFactory,
		storageDriver: storageDriver,
	}
}

func toProfileResponse(p *entity.Profile, role string) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:                p.Id,
		Email:             p.Email,
		Name:              p.Name,
		Cpf:               p.Cpf,
		Phone:             p.Phone,
		BirthDate:         p.BirthDate,
		Cep:               p.Cep,
		Street:            p.Street,
		Number:            p.HouseNumber,
		City:              p.City,
		State:             p.State,
		ProfilePicture:    p.ProfilePicture,
		PaymentActive:     p.PaymentActive,
		PlatformStatus:    p.PlatformStatus,
		DocumentsComplete: p.DocumentsComplete,
		CustomNotes:       p.CustomNotes,
		Role:              role,
		CreatedAt:         p.CreatedAt,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	role := ""
	if userRole, err := uow.UserRepository().FindRoleByUserId(ctx, userId); err == nil && userRole != nil {
		role = string(userRole.Role)
	}

	return toProfileResponse(profile, role), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Phone != "" {
		profile.Phone = &req.Phone
	}
	if req.BirthDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			profile.BirthDate = &parsed
		}
	}
	if req.Cep != "" {
		profile.Cep = &req.Cep
	}
	if req.Street != "" {
		profile.Street = &req.Street
	}
	if req.Number != "" {
		profile.HouseNumber = &req.Number
	}
	if req.City != "" {
		profile.City = &req.City
	}
	if req.State != "" {
		profile.State = &req.State
	}
	profile.UpdatedAt = time.Now()

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	role := ""
	if userRole, err := uow.UserRepository().FindRoleByUserId(ctx, userId); err == nil && userRole != nil {
		role = string(userRole.Role)
	}

	return toProfileResponse(profile, role), nil
}

var imageContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

func (s *profileService) UploadProfilePicture(ctx context.Context, userId uuid.UUID, file io.Reader, filename, contentType string) (*dto.UploadProfilePictureResponse, error) {
	ext, ok := imageContentTypes[contentType]
	if !ok {
		return nil, errors.New("unsupported file type: profile pictures must be jpeg, png or webp")
	}

	path := fmt.Sprintf("avatars/%s/%s.%s", userId, uuid.New(), ext)
	storedPath, err := s.storageDriver.Upload(ctx, file, path, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().UpdateProfilePicture(ctx, userId, storedPath); err != nil {
		return nil, err
	}

	return &dto.UploadProfilePictureResponse{ProfilePicture: storedPath}, nil
}
