package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careform/backend/internal/canvas"
	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
	"gorm.io/datatypes"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidElements  = errors.New("invalid template elements")
	ErrTemplateInUse    = errors.New("template is referenced by affidavits")
)

// SaveTemplateRequest 保存模板请求
// Elements 是编辑器的画布快照；Placeholders 是编辑器会话目录中的自定义占位符，
// 用于服务端重新解析，保存落库的占位符列表始终按快照重新提取，不信任客户端给的列表
type SaveTemplateRequest struct {
	Name         string                         `json:"name" binding:"required,min=1,max=255"`
	Description  string                         `json:"description" binding:"max=1000"`
	Elements     json.RawMessage                `json:"elements" binding:"required"`
	Placeholders []canvas.PlaceholderDefinition `json:"placeholders"`
}

// TemplateDTO 模板数据传输对象
type TemplateDTO struct {
	ID           uint                           `json:"id"`
	Name         string                         `json:"name"`
	Description  string                         `json:"description"`
	Elements     json.RawMessage                `json:"elements"`
	Placeholders []canvas.PlaceholderDefinition `json:"placeholders"`
	CreatedAt    string                         `json:"created_at"`
	UpdatedAt    string                         `json:"updated_at"`
}

// TemplateService 模板服务接口
type TemplateService interface {
	List(ctx context.Context) ([]*TemplateDTO, error)
	GetByID(ctx context.Context, id uint) (*TemplateDTO, error)
	Create(ctx context.Context, actorID uint, req SaveTemplateRequest) (*TemplateDTO, error)
	Update(ctx context.Context, actorID uint, id uint, req SaveTemplateRequest) (*TemplateDTO, error)
	Delete(ctx context.Context, actorID uint, id uint) error
	Placeholders(ctx context.Context) []canvas.PlaceholderDefinition
}

// templateService 实现
type templateService struct {
	templateRepo  repository.TemplateRepository
	affidavitRepo repository.AffidavitRepository
	auditBus      *eventbus.AuditEventBus
}

// NewTemplateService 创建服务实例
func NewTemplateService(templateRepo repository.TemplateRepository, affidavitRepo repository.AffidavitRepository, auditBus *eventbus.AuditEventBus) TemplateService {
	return &templateService{
		templateRepo:  templateRepo,
		affidavitRepo: affidavitRepo,
		auditBus:      auditBus,
	}
}

// List 获取模板列表
func (s *templateService) List(ctx context.Context) ([]*TemplateDTO, error) {
	templates, err := s.templateRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	result := make([]*TemplateDTO, len(templates))
	for i, t := range templates {
		result[i] = toTemplateDTO(&t)
	}
	return result, nil
}

// GetByID 获取模板详情
func (s *templateService) GetByID(ctx context.Context, id uint) (*TemplateDTO, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return toTemplateDTO(template), nil
}

// Create 保存新模板（POST 语义）
func (s *templateService) Create(ctx context.Context, actorID uint, req SaveTemplateRequest) (*TemplateDTO, error) {
	elements, placeholders, err := normalizeSnapshot(req)
	if err != nil {
		return nil, err
	}

	template := &model.AffidavitTemplate{
		Name:         req.Name,
		Description:  req.Description,
		Elements:     datatypes.JSON(elements),
		Placeholders: datatypes.JSON(placeholders),
		CreatedByID:  actorID,
	}
	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventCreated,
		Entity:   "template",
		EntityID: template.ID,
		UserID:   actorID,
		Detail:   template.Name,
	})
	return toTemplateDTO(template), nil
}

// Update 覆盖已有模板（PUT 语义）
func (s *templateService) Update(ctx context.Context, actorID uint, id uint, req SaveTemplateRequest) (*TemplateDTO, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	elements, placeholders, err := normalizeSnapshot(req)
	if err != nil {
		return nil, err
	}

	template.Name = req.Name
	template.Description = req.Description
	template.Elements = datatypes.JSON(elements)
	template.Placeholders = datatypes.JSON(placeholders)

	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventUpdated,
		Entity:   "template",
		EntityID: template.ID,
		UserID:   actorID,
		Detail:   template.Name,
	})
	return toTemplateDTO(template), nil
}

// Delete 删除模板，被宣誓书引用时拒绝
func (s *templateService) Delete(ctx context.Context, actorID uint, id uint) error {
	if _, err := s.templateRepo.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}

	count, err := s.affidavitRepo.CountByTemplate(id)
	if err != nil {
		return fmt.Errorf("failed to count affidavits: %w", err)
	}
	if count > 0 {
		return ErrTemplateInUse
	}

	if err := s.templateRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	eventbus.PublishAudit(ctx, s.auditBus, eventbus.AuditEvent{
		Type:     eventbus.AuditEventDeleted,
		Entity:   "template",
		EntityID: id,
		UserID:   actorID,
	})
	return nil
}

// Placeholders 内置占位符目录，给编辑器的选择器用
func (s *templateService) Placeholders(ctx context.Context) []canvas.PlaceholderDefinition {
	return canvas.Builtins()
}

// normalizeSnapshot 解析画布快照并在服务端重新提取占位符列表
// 快照经 Deserialize/Serialize 一轮，保证落库的是规范形态且 z 序不变
func normalizeSnapshot(req SaveTemplateRequest) (elements, placeholders []byte, err error) {
	objects, err := canvas.Deserialize(req.Elements)
	if err != nil {
		return nil, nil, ErrInvalidElements
	}

	elements, err = canvas.Serialize(objects)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize elements: %w", err)
	}

	reg := canvas.NewRegistryWith(req.Placeholders)
	used := canvas.ExtractPlaceholders(objects, reg)
	placeholders, err = json.Marshal(used)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal placeholders: %w", err)
	}
	return elements, placeholders, nil
}

// toTemplateDTO 转换为 DTO
func toTemplateDTO(t *model.AffidavitTemplate) *TemplateDTO {
	dto := &TemplateDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Elements:    json.RawMessage(t.Elements),
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if len(t.Placeholders) > 0 {
		json.Unmarshal(t.Placeholders, &dto.Placeholders)
	}
	return dto
}
