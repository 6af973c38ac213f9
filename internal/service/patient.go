package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

// CreatePatientRequest 创建患者请求
type CreatePatientRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	SSNLast4    string `json:"ssn_last4" binding:"omitempty,len=4"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address" binding:"max=500"`
}

// UpdatePatientRequest 更新患者请求
type UpdatePatientRequest = CreatePatientRequest

// LinkProviderRequest 患者关联服务方请求
type LinkProviderRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	StartDate  string `json:"start_date"`
}

// PatientService 患者服务接口
type PatientService interface {
	List(ctx context.Context) ([]model.Patient, error)
	GetByID(ctx context.Context, id uint) (*model.Patient, error)
	Create(ctx context.Context, actorID uint, req CreatePatientRequest) (*model.Patient, error)
	Update(ctx context.Context, actorID uint, id uint, req UpdatePatientRequest) (*model.Patient, error)
	Delete(ctx context.Context, actorID uint, id uint) error
	LinkProvider(ctx context.Context, id uint, req LinkProviderRequest) error
	UnlinkProvider(ctx context.Context, id, providerID uint) error
}

// patientService 实现
type patientService struct {
	patientRepo  repository.PatientRepository
	providerRepo repository.ProviderRepository
	auditBus     *eventbus.AuditEventBus
}

// NewPatientService 创建服务实例
func NewPatientService(patientRepo repository.PatientRepository, providerRepo repository.ProviderRepository, auditBus *eventbus.AuditEventBus) PatientService {
	return &patientService{
		patientRepo:  patientRepo,
		providerRepo: providerRepo,
		auditBus:     auditBus,
	}
}

// List 获取患者列表
func (s *patientService) List(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.patientRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// GetByID 获取患者详情
func (s *patientService) GetByID(ctx context.Context, id uint) (*model.Patient, error) {
	patient, err := s.patientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// Create 创建患者
func (s *patientService) Create(ctx context.Context, actorID uint, req CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		SSNLast4:  req.SSNLast4,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if dob, err := parseDate(req.DateOfBirth); err == nil {
		patient.DateOfBirth = dob
	}

	if err := s.patientRepo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventCreated,
		Entity:   "patient",
		EntityID: patient.ID,
		UserID:   actorID,
		Detail:   patient.LastName + ", " + patient.FirstName,
	})
	return patient, nil
}

// Update 更新患者
func (s *patientService) Update(ctx context.Context, actorID uint, id uint, req UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.patientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.SSNLast4 = req.SSNLast4
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.Address = req.Address
	if dob, err := parseDate(req.DateOfBirth); err == nil {
		patient.DateOfBirth = dob
	}

	if err := s.patientRepo.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventUpdated,
		Entity:   "patient",
		EntityID: patient.ID,
		UserID:   actorID,
	})
	return patient, nil
}

// Delete 删除患者
func (s *patientService) Delete(ctx context.Context, actorID uint, id uint) error {
	if _, err := s.patientRepo.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("failed to get patient: %w", err)
	}

	if err := s.patientRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventDeleted,
		Entity:   "patient",
		EntityID: id,
		UserID:   actorID,
	})
	return nil
}

// LinkProvider 关联服务方
func (s *patientService) LinkProvider(ctx context.Context, id uint, req LinkProviderRequest) error {
	if _, err := s.patientRepo.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("failed to get patient: %w", err)
	}
	if _, err := s.providerRepo.GetByID(req.ProviderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProviderNotFound
		}
		return fmt.Errorf("failed to get provider: %w", err)
	}

	link := &model.PatientProvider{
		PatientID:  id,
		ProviderID: req.ProviderID,
	}
	if start, err := parseDate(req.StartDate); err == nil {
		link.StartDate = start
	}

	if err := s.patientRepo.LinkProvider(link); err != nil {
		return fmt.Errorf("failed to link provider: %w", err)
	}
	return nil
}

// UnlinkProvider 解除关联
func (s *patientService) UnlinkProvider(ctx context.Context, id, providerID uint) error {
	if err := s.patientRepo.UnlinkProvider(id, providerID); err != nil {
		return fmt.Errorf("failed to unlink provider: %w", err)
	}
	return nil
}

// parseDate 解析 YYYY-MM-DD，空串返回错误由调用方忽略
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, errors.New("empty date")
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
