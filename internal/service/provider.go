package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
)

// CreateProviderRequest 创建服务方请求
type CreateProviderRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	Specialty string `json:"specialty" binding:"max=255"`
	Address   string `json:"address" binding:"max=500"`
	Phone     string `json:"phone" binding:"max=50"`
	Fax       string `json:"fax" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// UpdateProviderRequest 更新服务方请求
type UpdateProviderRequest = CreateProviderRequest

// ProviderService 服务方服务接口
type ProviderService interface {
	List(ctx context.Context) ([]model.Provider, error)
	GetByID(ctx context.Context, id uint) (*model.Provider, error)
	Create(ctx context.Context, actorID uint, req CreateProviderRequest) (*model.Provider, error)
	Update(ctx context.Context, actorID uint, id uint, req UpdateProviderRequest) (*model.Provider, error)
	Delete(ctx context.Context, actorID uint, id uint) error
	AttachHIPAASample(ctx context.Context, actorID uint, id uint, path string) (*model.Provider, error)
}

// providerService 实现
type providerService struct {
	providerRepo repository.ProviderRepository
	auditBus     *eventbus.AuditEventBus
}

// NewProviderService 创建服务实例
func NewProviderService(providerRepo repository.ProviderRepository, auditBus *eventbus.AuditEventBus) ProviderService {
	return &providerService{providerRepo: providerRepo, auditBus: auditBus}
}

// List 获取服务方列表
func (s *providerService) List(ctx context.Context) ([]model.Provider, error) {
	providers, err := s.providerRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// GetByID 获取服务方详情
func (s *providerService) GetByID(ctx context.Context, id uint) (*model.Provider, error) {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return provider, nil
}

// Create 创建服务方
func (s *providerService) Create(ctx context.Context, actorID uint, req CreateProviderRequest) (*model.Provider, error) {
	provider := &model.Provider{
		Name:      req.Name,
		Specialty: req.Specialty,
		Address:   req.Address,
		Phone:     req.Phone,
		Fax:       req.Fax,
		Email:     req.Email,
	}
	if err := s.providerRepo.Create(provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventCreated,
		Entity:   "provider",
		EntityID: provider.ID,
		UserID:   actorID,
		Detail:   provider.Name,
	})
	return provider, nil
}

// Update 更新服务方，发布审计事件
func (s *providerService) Update(ctx context.Context, actorID uint, id uint, req UpdateProviderRequest) (*model.Provider, error) {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	provider.Name = req.Name
	provider.Specialty = req.Specialty
	provider.Address = req.Address
	provider.Phone = req.Phone
	provider.Fax = req.Fax
	provider.Email = req.Email

	if err := s.providerRepo.Update(provider); err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventUpdated,
		Entity:   "provider",
		EntityID: provider.ID,
		UserID:   actorID,
		Detail:   provider.Name,
	})
	return provider, nil
}

// Delete 删除服务方，发布审计事件
func (s *providerService) Delete(ctx context.Context, actorID uint, id uint) error {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProviderNotFound
		}
		return fmt.Errorf("failed to get provider: %w", err)
	}

	if err := s.providerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventDeleted,
		Entity:   "provider",
		EntityID: id,
		UserID:   actorID,
		Detail:   provider.Name,
	})
	return nil
}

// AttachHIPAASample 记录 HIPAA 样例文件路径
func (s *providerService) AttachHIPAASample(ctx context.Context, actorID uint, id uint, path string) (*model.Provider, error) {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	provider.HIPAASamplePath = path
	if err := s.providerRepo.Update(provider); err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventUploaded,
		Entity:   "provider",
		EntityID: provider.ID,
		UserID:   actorID,
		Detail:   path,
	})
	return provider, nil
}
