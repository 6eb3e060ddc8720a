package service

import (
	"context"
	"errors"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/audit"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// publicConfigKeys lists the keys an unauthenticated caller may read.
// Everything else requires an admin token.
var publicConfigKeys = map[string]bool{
	"whatsapp_suporte":    true,
	"link_plataforma":     true,
	"mensagem_manutencao": true,
}

type IConfigService interface {
	GetConfig(ctx context.Context, key string) (*dto.ConfigResponse, error)
	GetPublicConfig(ctx context.Context, key string) (*dto.ConfigResponse, error)
	ListConfigs(ctx context.Context) ([]*dto.ConfigResponse, error)
	UpsertConfig(ctx context.Context, adminId uuid.UUID, req *dto.UpsertConfigRequest) (*dto.ConfigResponse, error)
	DeleteConfig(ctx context.Context, adminId uuid.UUID, key string) error
}

type configService struct {
	uowFactory    unitofwork.RepositoryFactory
	cache         *cache.Cache
	auditRecorder *audit.Recorder
}

func NewConfigService(uowFactory unitofwork.RepositoryFactory, auditRecorder *audit.Recorder) IConfigService {
	// Config values change rarely. Cache for 5 minutes, purge every 10.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &configService{
		uowFactory:    uowFactory,
		cache:         c,
		auditRecorder: auditRecorder,
	}
}

func toConfigResponse(cfg *entity.PlatformConfig) *dto.ConfigResponse {
	return &dto.ConfigResponse{
		Key:       cfg.Key,
		Value:     cfg.Value,
		UpdatedAt: cfg.UpdatedAt,
	}
}

func (s *configService) GetConfig(ctx context.Context, key string) (*dto.ConfigResponse, error) {
	if x, found := s.cache.Get(key); found {
		return x.(*dto.ConfigResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg, err := uow.ConfigRepository().FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, errors.New("config not found")
	}

	resp := toConfigResponse(cfg)
	s.cache.Set(key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *configService) GetPublicConfig(ctx context.Context, key string) (*dto.ConfigResponse, error) {
	if !publicConfigKeys[key] {
		return nil, errors.New("config not found")
	}
	return s.GetConfig(ctx, key)
}

func (s *configService) ListConfigs(ctx context.Context) ([]*dto.ConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	configs, err := uow.ConfigRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, toConfigResponse(cfg))
	}
	return responses, nil
}

func (s *configService) UpsertConfig(ctx context.Context, adminId uuid.UUID, req *dto.UpsertConfigRequest) (*dto.ConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg, err := uow.ConfigRepository().Upsert(ctx, req.Key, req.Value)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(req.Key)
	if s.auditRecorder != nil {
		s.auditRecorder.LogConfigChanged(adminId, req.Key)
	}
	return toConfigResponse(cfg), nil
}

func (s *configService) DeleteConfig(ctx context.Context, adminId uuid.UUID, key string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.ConfigRepository().FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if cfg == nil {
		return errors.New("config not found")
	}

	if err := uow.ConfigRepository().Delete(ctx, cfg.Id); err != nil {
		return err
	}

	s.cache.Delete(key)
	if s.auditRecorder != nil {
		s.auditRecorder.LogConfigChanged(adminId, key)
	}
	return nil
}
