package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/careform/backend/internal/canvas"
	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
	"gorm.io/datatypes"
)

var (
	ErrAffidavitNotFound = errors.New("affidavit not found")
	ErrNotGenerated      = errors.New("affidavit has not been generated")
)

// CreateAffidavitRequest 创建宣誓书请求
type CreateAffidavitRequest struct {
	TemplateID uint `json:"template_id" binding:"required"`
	PatientID  uint `json:"patient_id" binding:"required"`
	ProviderID uint `json:"provider_id" binding:"required"`
}

// GenerateAffidavitRequest 填充宣誓书请求，键为占位符 ID
type GenerateAffidavitRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// AffidavitService 宣誓书服务接口
type AffidavitService interface {
	List(ctx context.Context) ([]model.Affidavit, error)
	GetByID(ctx context.Context, id uint) (*model.Affidavit, error)
	GetByPatient(ctx context.Context, patientID uint) ([]model.Affidavit, error)
	Create(ctx context.Context, actorID uint, req CreateAffidavitRequest) (*model.Affidavit, error)
	Generate(ctx context.Context, actorID uint, id uint, req GenerateAffidavitRequest) (*model.Affidavit, error)
	Sign(ctx context.Context, actorID uint, id uint) (*model.Affidavit, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

// affidavitService 实现
type affidavitService struct {
	affidavitRepo repository.AffidavitRepository
	templateRepo  repository.TemplateRepository
	patientRepo   repository.PatientRepository
	providerRepo  repository.ProviderRepository
	auditBus      *eventbus.AuditEventBus
}

// NewAffidavitService 创建服务实例
func NewAffidavitService(
	affidavitRepo repository.AffidavitRepository,
	templateRepo repository.TemplateRepository,
	patientRepo repository.PatientRepository,
	providerRepo repository.ProviderRepository,
	auditBus *eventbus.AuditEventBus,
) AffidavitService {
	return &affidavitService{
		affidavitRepo: affidavitRepo,
		templateRepo:  templateRepo,
		patientRepo:   patientRepo,
		providerRepo:  providerRepo,
		auditBus:      auditBus,
	}
}

// List 获取宣誓书列表
func (s *affidavitService) List(ctx context.Context) ([]model.Affidavit, error) {
	affidavits, err := s.affidavitRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list affidavits: %w", err)
	}
	return affidavits, nil
}

// GetByID 获取宣誓书详情
func (s *affidavitService) GetByID(ctx context.Context, id uint) (*model.Affidavit, error) {
	affidavit, err := s.affidavitRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAffidavitNotFound
		}
		return nil, fmt.Errorf("failed to get affidavit: %w", err)
	}
	return affidavit, nil
}

// GetByPatient 获取某患者的宣誓书
func (s *affidavitService) GetByPatient(ctx context.Context, patientID uint) ([]model.Affidavit, error) {
	affidavits, err := s.affidavitRepo.GetByPatient(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list affidavits: %w", err)
	}
	return affidavits, nil
}

// Create 创建宣誓书，校验模板/患者/服务方均存在
func (s *affidavitService) Create(ctx context.Context, actorID uint, req CreateAffidavitRequest) (*model.Affidavit, error) {
	if _, err := s.templateRepo.GetByID(req.TemplateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if _, err := s.patientRepo.GetByID(req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if _, err := s.providerRepo.GetByID(req.ProviderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	affidavit := &model.Affidavit{
		TemplateID: req.TemplateID,
		PatientID:  req.PatientID,
		ProviderID: req.ProviderID,
		Status:     model.AffidavitStatusPending,
	}
	if err := s.affidavitRepo.Create(affidavit); err != nil {
		return nil, fmt.Errorf("failed to create affidavit: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventCreated,
		Entity:   "affidavit",
		EntityID: affidavit.ID,
		UserID:   actorID,
	})
	return affidavit, nil
}

// Generate 按模板填充占位符取值
// 取值优先级：提交值 > 定义的 defaultValue > 保留 {{Name}} 原样
func (s *affidavitService) Generate(ctx context.Context, actorID uint, id uint, req GenerateAffidavitRequest) (*model.Affidavit, error) {
	affidavit, err := s.affidavitRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAffidavitNotFound
		}
		return nil, fmt.Errorf("failed to get affidavit: %w", err)
	}

	template, err := s.templateRepo.GetByID(affidavit.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	objects, err := canvas.Deserialize(template.Elements)
	if err != nil {
		return nil, ErrInvalidElements
	}

	var defs []canvas.PlaceholderDefinition
	if len(template.Placeholders) > 0 {
		if err := json.Unmarshal(template.Placeholders, &defs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal placeholders: %w", err)
		}
	}
	defaults := make(map[string]string, len(defs))
	for _, def := range defs {
		if def.DefaultValue != "" {
			defaults[def.ID] = def.DefaultValue
		}
	}

	for _, obj := range objects {
		if !obj.IsPlaceholder() {
			continue
		}
		if value, ok := req.Values[obj.Metadata.PlaceholderID]; ok && value != "" {
			obj.Text = value
			continue
		}
		if value, ok := defaults[obj.Metadata.PlaceholderID]; ok {
			obj.Text = value
		}
	}

	content, err := canvas.Serialize(objects)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize content: %w", err)
	}
	values, err := json.Marshal(req.Values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal values: %w", err)
	}

	affidavit.Content = datatypes.JSON(content)
	affidavit.Values = datatypes.JSON(values)
	affidavit.Status = model.AffidavitStatusGenerated

	if err := s.affidavitRepo.Update(affidavit); err != nil {
		return nil, fmt.Errorf("failed to update affidavit: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventUpdated,
		Entity:   "affidavit",
		EntityID: affidavit.ID,
		UserID:   actorID,
		Detail:   "generated",
	})
	return affidavit, nil
}

// Sign 签署，仅已填充的宣誓书可签署
func (s *affidavitService) Sign(ctx context.Context, actorID uint, id uint) (*model.Affidavit, error) {
	affidavit, err := s.affidavitRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAffidavitNotFound
		}
		return nil, fmt.Errorf("failed to get affidavit: %w", err)
	}

	if affidavit.Status != model.AffidavitStatusGenerated {
		return nil, ErrNotGenerated
	}

	now := time.Now()
	affidavit.Status = model.AffidavitStatusSigned
	affidavit.SignedAt = &now

	if err := s.affidavitRepo.Update(affidavit); err != nil {
		return nil, fmt.Errorf("failed to update affidavit: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventUpdated,
		Entity:   "affidavit",
		EntityID: affidavit.ID,
		UserID:   actorID,
		Detail:   "signed",
	})
	return affidavit, nil
}

// Delete 删除宣誓书
func (s *affidavitService) Delete(ctx context.Context, actorID uint, id uint) error {
	if _, err := s.affidavitRepo.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAffidavitNotFound
		}
		return fmt.Errorf("failed to get affidavit: %w", err)
	}

	if err := s.affidavitRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete affidavit: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventDeleted,
		Entity:   "affidavit",
		EntityID: id,
		UserID:   actorID,
	})
	return nil
}
