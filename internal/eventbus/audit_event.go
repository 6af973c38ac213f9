package eventbus

import "context"

type AuditEventType string

const (
	AuditEventCreated  AuditEventType = "Created"
	AuditEventUpdated  AuditEventType = "Updated"
	AuditEventDeleted  AuditEventType = "Deleted"
	AuditEventUploaded AuditEventType = "Uploaded"
)

// AuditEvent 实体变更事件，由 Service 层发布
type AuditEvent struct {
	Type     AuditEventType
	Entity   string // patient, provider, template, affidavit
	EntityID uint
	UserID   uint
	Detail   string
}

type AuditEventHandler = Handler[AuditEvent]
type AuditEventBus = Bus[AuditEventType, AuditEvent]

func NewAuditEventBus() *AuditEventBus {
	return NewBus[AuditEventType, AuditEvent]()
}

// PublishAudit 发布审计事件，事件类型取自 event.Type
func PublishAudit(ctx context.Context, bus *AuditEventBus, event AuditEvent) error {
	if bus == nil {
		return nil
	}
	return bus.Publish(ctx, event.Type, event)
}
