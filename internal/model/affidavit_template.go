package model

import (
	"time"

	"gorm.io/datatypes"
)

// AffidavitTemplate 宣誓书模板
// Elements 保存模板编辑器的画布快照（数组顺序即 z 序），
// Placeholders 保存快照实际引用的占位符定义，保存时在服务端重新提取
type AffidavitTemplate struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"size:1000"`
	Elements     datatypes.JSON `json:"elements" gorm:"type:json"`
	Placeholders datatypes.JSON `json:"placeholders" gorm:"type:json"`
	CreatedByID  uint           `json:"created_by_id" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName 指定表名
func (AffidavitTemplate) TableName() string {
	return "affidavit_templates"
}
