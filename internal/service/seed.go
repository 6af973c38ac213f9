package service

import (
	"os"

	"github.com/careform/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

// InitAdminUser 首次启动时创建默认管理员
// 已存在任何用户则跳过；默认口令可用 ADMIN_PASSWORD 环境变量覆盖
func InitAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        "admin@careform.local",
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	klog.V(2).Infof("已创建默认管理员账号: %s", admin.Email)
	return nil
}
