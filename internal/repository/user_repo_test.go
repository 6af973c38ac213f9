package repository

import (
	"errors"
	"testing"

	"github.com/careform/backend/internal/model"
)

func TestUserRepositoryGetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{
		Email:        "staff@careform.local",
		Name:         "Front Desk",
		PasswordHash: "x",
		Role:         model.RoleStaff,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByEmail("staff@careform.local")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != user.ID || got.Name != "Front Desk" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByEmail("missing@careform.local"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 users, got %d", count)
	}

	if err := repo.Create(&model.User{
		Email:        "a@careform.local",
		Name:         "A",
		PasswordHash: "x",
	}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	count, err = repo.Count()
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}
