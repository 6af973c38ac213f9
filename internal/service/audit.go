package service

import (
	"context"
	"fmt"

	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
)

// AuditService 审计查询服务接口
type AuditService interface {
	Recent(ctx context.Context, limit int) ([]model.AuditLog, error)
	ByEntity(ctx context.Context, entity string, entityID uint) ([]model.AuditLog, error)
}

// auditService 实现
type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService 创建服务实例
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Recent 最近的审计记录
func (s *auditService) Recent(ctx context.Context, limit int) ([]model.AuditLog, error) {
	entries, err := s.auditRepo.GetRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// ByEntity 某实体的审计轨迹
func (s *auditService) ByEntity(ctx context.Context, entity string, entityID uint) ([]model.AuditLog, error) {
	entries, err := s.auditRepo.GetByEntity(entity, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
