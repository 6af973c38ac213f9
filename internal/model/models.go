package model

import (
	"time"
)

// 用户角色
const (
	RoleAdmin = "admin" // 管理员，可删除服务方与模板
	RoleStaff = "staff" // 普通职员
)

// User 系统用户
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:20;default:staff"` // admin, staff
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Patient 患者
type Patient struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	FirstName   string     `json:"first_name" gorm:"size:100;not null"`
	LastName    string     `json:"last_name" gorm:"size:100;not null;index"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	SSNLast4    string     `json:"ssn_last4" gorm:"size:4"`
	Email       string     `json:"email" gorm:"size:255"`
	Phone       string     `json:"phone" gorm:"size:50"`
	Address     string     `json:"address" gorm:"size:500"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Providers   []Provider `json:"providers,omitempty" gorm:"many2many:patient_providers;"`
}

// Provider 医疗服务方
type Provider struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:255;not null;index"`
	Specialty       string    `json:"specialty" gorm:"size:255"`
	Address         string    `json:"address" gorm:"size:500"`
	Phone           string    `json:"phone" gorm:"size:50"`
	Fax             string    `json:"fax" gorm:"size:50"`
	Email           string    `json:"email" gorm:"size:255"`
	HIPAASamplePath string    `json:"hipaa_sample_path" gorm:"size:500"` // HIPAA 样例文件的存储路径
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PatientProvider 患者与服务方的关联
type PatientProvider struct {
	PatientID  uint       `json:"patient_id" gorm:"primaryKey"`
	ProviderID uint       `json:"provider_id" gorm:"primaryKey"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	CreatedAt  time.Time  `json:"created_at"`
}
