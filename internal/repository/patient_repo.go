package repository

import (
	"errors"

	"github.com/careform/backend/internal/model"
	"gorm.io/gorm"
)

// patientRepository 实现
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository 创建 Repository 实例
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create 创建患者
func (r *patientRepository) Create(patient *model.Patient) error {
	return r.db.Create(patient).Error
}

// List 获取患者列表，按姓氏排序
func (r *patientRepository) List() ([]model.Patient, error) {
	var patients []model.Patient
	result := r.db.Order("last_name ASC, first_name ASC").Find(&patients)
	return patients, result.Error
}

// GetByID 根据ID获取患者详情（含关联服务方）
func (r *patientRepository) GetByID(id uint) (*model.Patient, error) {
	var patient model.Patient
	result := r.db.Preload("Providers").First(&patient, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &patient, nil
}

// Update 更新患者
func (r *patientRepository) Update(patient *model.Patient) error {
	return r.db.Save(patient).Error
}

// Delete 删除患者及其关联关系
func (r *patientRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&model.PatientProvider{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Patient{}, id).Error
	})
}

// LinkProvider 关联服务方
func (r *patientRepository) LinkProvider(link *model.PatientProvider) error {
	return r.db.Create(link).Error
}

// UnlinkProvider 解除关联
func (r *patientRepository) UnlinkProvider(patientID, providerID uint) error {
	return r.db.Where("patient_id = ? AND provider_id = ?", patientID, providerID).
		Delete(&model.PatientProvider{}).Error
}
