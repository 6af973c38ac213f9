package service

import (
	"testing"

	"github.com/careform/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

func TestInitAdminUserCreatesDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("ADMIN_PASSWORD", "bootstrap-pass")

	if err := InitAdminUser(db); err != nil {
		t.Fatalf("InitAdminUser error: %v", err)
	}

	var admin model.User
	if err := db.Where("email = ?", "admin@careform.local").First(&admin).Error; err != nil {
		t.Fatalf("load admin error: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("bootstrap-pass")); err != nil {
		t.Fatalf("password hash mismatch: %v", err)
	}
}

// 已存在用户时不再播种
func TestInitAdminUserSkipsWhenUsersExist(t *testing.T) {
	db := newTestDB(t)

	if err := db.Create(&model.User{
		Email:        "existing@careform.local",
		Name:         "Existing",
		PasswordHash: "x",
	}).Error; err != nil {
		t.Fatalf("create user error: %v", err)
	}

	if err := InitAdminUser(db); err != nil {
		t.Fatalf("InitAdminUser error: %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected no seeded admin, got %d users", count)
	}
}
