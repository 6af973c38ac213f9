package repository

import (
	"errors"

	"github.com/careform/backend/internal/model"
	"gorm.io/gorm"
)

// TemplateRepository 宣誓书模板 Repository 接口
type TemplateRepository interface {
	List() ([]model.AffidavitTemplate, error)
	GetByID(id uint) (*model.AffidavitTemplate, error)
	Create(template *model.AffidavitTemplate) error
	Update(template *model.AffidavitTemplate) error
	Delete(id uint) error
}

// templateRepository 实现
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository 创建 Repository 实例
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// List 获取所有模板列表
func (r *templateRepository) List() ([]model.AffidavitTemplate, error) {
	var templates []model.AffidavitTemplate
	result := r.db.Order("name ASC, id ASC").Find(&templates)
	return templates, result.Error
}

// GetByID 根据ID获取模板
func (r *templateRepository) GetByID(id uint) (*model.AffidavitTemplate, error) {
	var template model.AffidavitTemplate
	result := r.db.First(&template, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &template, nil
}

// Create 创建模板
func (r *templateRepository) Create(template *model.AffidavitTemplate) error {
	return r.db.Create(template).Error
}

// Update 更新模板
func (r *templateRepository) Update(template *model.AffidavitTemplate) error {
	return r.db.Save(template).Error
}

// Delete 删除模板
func (r *templateRepository) Delete(id uint) error {
	return r.db.Delete(&model.AffidavitTemplate{}, id).Error
}
