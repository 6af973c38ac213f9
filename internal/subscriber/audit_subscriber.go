package subscriber

import (
	"context"

	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
	"github.com/careform/backend/internal/utils"
	"k8s.io/klog/v2"
)

// AuditSubscriber 订阅实体变更事件并落库为审计记录
type AuditSubscriber struct {
	auditRepo repository.AuditRepository
}

func NewAuditSubscriber(auditRepo repository.AuditRepository) *AuditSubscriber {
	return &AuditSubscriber{auditRepo: auditRepo}
}

func (s *AuditSubscriber) Register(bus *eventbus.AuditEventBus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.AuditEventCreated, s.handle(model.AuditActionCreate))
	bus.Subscribe(eventbus.AuditEventUpdated, s.handle(model.AuditActionUpdate))
	bus.Subscribe(eventbus.AuditEventDeleted, s.handle(model.AuditActionDelete))
	bus.Subscribe(eventbus.AuditEventUploaded, s.handle(model.AuditActionUpload))
}

func (s *AuditSubscriber) handle(action string) eventbus.AuditEventHandler {
	return func(ctx context.Context, event eventbus.AuditEvent) error {
		entry := &model.AuditLog{
			UserID:   event.UserID,
			Action:   action,
			Entity:   event.Entity,
			EntityID: event.EntityID,
			Detail:   event.Detail,
		}
		if err := s.auditRepo.Create(entry); err != nil {
			klog.Errorf("审计事件落库失败: entity=%s, id=%d, error=%v", event.Entity, event.EntityID, err)
			return err
		}
		klog.V(6).Infof("审计事件已记录: action=%s, event=%s", action, utils.ToJSON(event))
		return nil
	}
}
