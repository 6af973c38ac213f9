package repository

import (
	"github.com/careform/backend/internal/model"
	"gorm.io/gorm"
)

// AuditRepository 审计记录 Repository 接口
type AuditRepository interface {
	Create(entry *model.AuditLog) error
	GetByEntity(entity string, entityID uint) ([]model.AuditLog, error)
	GetRecent(limit int) ([]model.AuditLog, error)
}

// auditRepository 实现
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository 创建 Repository 实例
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create 写入审计记录
func (r *auditRepository) Create(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetByEntity 查询某实体的审计轨迹，最新在前
func (r *auditRepository) GetByEntity(entity string, entityID uint) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	result := r.db.Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC, id DESC").
		Find(&entries)
	return entries, result.Error
}

// GetRecent 最近的审计记录
func (r *auditRepository) GetRecent(limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []model.AuditLog
	result := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&entries)
	return entries, result.Error
}
