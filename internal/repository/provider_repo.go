package repository

import (
	"errors"

	"github.com/careform/backend/internal/model"
	"gorm.io/gorm"
)

// providerRepository 实现
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository 创建 Repository 实例
func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

// Create 创建服务方
func (r *providerRepository) Create(provider *model.Provider) error {
	return r.db.Create(provider).Error
}

// List 获取服务方列表
func (r *providerRepository) List() ([]model.Provider, error) {
	var providers []model.Provider
	result := r.db.Order("name ASC").Find(&providers)
	return providers, result.Error
}

// GetByID 根据ID获取服务方
func (r *providerRepository) GetByID(id uint) (*model.Provider, error) {
	var provider model.Provider
	result := r.db.First(&provider, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &provider, nil
}

// Update 更新服务方
func (r *providerRepository) Update(provider *model.Provider) error {
	return r.db.Save(provider).Error
}

// Delete 删除服务方及其关联关系
func (r *providerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", id).Delete(&model.PatientProvider{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Provider{}, id).Error
	})
}
