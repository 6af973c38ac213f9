package model

import "time"

// 审计动作
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionUpload = "upload"
)

// AuditLog 审计记录，由事件总线的订阅者落库
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Action    string    `json:"action" gorm:"size:20;not null;index"`
	Entity    string    `json:"entity" gorm:"size:50;not null;index"` // patient, provider, template, affidavit
	EntityID  uint      `json:"entity_id" gorm:"index"`
	Detail    string    `json:"detail" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (AuditLog) TableName() string {
	return "audit_logs"
}
