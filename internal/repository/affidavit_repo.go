package repository

import (
	"errors"

	"github.com/careform/backend/internal/model"
	"gorm.io/gorm"
)

// AffidavitRepository 宣誓书 Repository 接口
type AffidavitRepository interface {
	Create(affidavit *model.Affidavit) error
	List() ([]model.Affidavit, error)
	GetByID(id uint) (*model.Affidavit, error)
	GetByPatient(patientID uint) ([]model.Affidavit, error)
	Update(affidavit *model.Affidavit) error
	Delete(id uint) error
	CountByTemplate(templateID uint) (int64, error)
}

// affidavitRepository 实现
type affidavitRepository struct {
	db *gorm.DB
}

// NewAffidavitRepository 创建 Repository 实例
func NewAffidavitRepository(db *gorm.DB) AffidavitRepository {
	return &affidavitRepository{db: db}
}

// Create 创建宣誓书
func (r *affidavitRepository) Create(affidavit *model.Affidavit) error {
	return r.db.Create(affidavit).Error
}

// List 获取宣誓书列表，最新在前
func (r *affidavitRepository) List() ([]model.Affidavit, error) {
	var affidavits []model.Affidavit
	result := r.db.Order("created_at DESC, id DESC").Find(&affidavits)
	return affidavits, result.Error
}

// GetByID 根据ID获取宣誓书详情（含模板、患者、服务方）
func (r *affidavitRepository) GetByID(id uint) (*model.Affidavit, error) {
	var affidavit model.Affidavit
	result := r.db.Preload("Template").Preload("Patient").Preload("Provider").First(&affidavit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &affidavit, nil
}

// GetByPatient 获取某患者的全部宣誓书
func (r *affidavitRepository) GetByPatient(patientID uint) ([]model.Affidavit, error) {
	var affidavits []model.Affidavit
	result := r.db.Where("patient_id = ?", patientID).
		Order("created_at DESC, id DESC").
		Find(&affidavits)
	return affidavits, result.Error
}

// Update 更新宣誓书
func (r *affidavitRepository) Update(affidavit *model.Affidavit) error {
	return r.db.Save(affidavit).Error
}

// Delete 删除宣誓书
func (r *affidavitRepository) Delete(id uint) error {
	return r.db.Delete(&model.Affidavit{}, id).Error
}

// CountByTemplate 统计引用某模板的宣誓书数量
func (r *affidavitRepository) CountByTemplate(templateID uint) (int64, error) {
	var count int64
	result := r.db.Model(&model.Affidavit{}).Where("template_id = ?", templateID).Count(&count)
	return count, result.Error
}
