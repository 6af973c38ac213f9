package model

import (
	"time"

	"gorm.io/datatypes"
)

// 宣誓书状态
const (
	AffidavitStatusPending   = "pending"   // 已创建，未填充
	AffidavitStatusGenerated = "generated" // 已按模板填充
	AffidavitStatusSigned    = "signed"    // 已签署
)

// Affidavit 宣誓书，由模板 + 占位符取值生成
type Affidavit struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	TemplateID uint           `json:"template_id" gorm:"index;not null"`
	PatientID  uint           `json:"patient_id" gorm:"index;not null"`
	ProviderID uint           `json:"provider_id" gorm:"index;not null"`
	Status     string         `json:"status" gorm:"size:20;default:pending"` // pending, generated, signed
	Values     datatypes.JSON `json:"values" gorm:"type:json"`               // 占位符 ID -> 填充值
	Content    datatypes.JSON `json:"content" gorm:"type:json"`              // 填充后的画布快照
	SignedAt   *time.Time     `json:"signed_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Template *AffidavitTemplate `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	Patient  *Patient           `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Provider *Provider          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}

// TableName 指定表名
func (Affidavit) TableName() string {
	return "affidavits"
}
