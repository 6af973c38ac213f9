package repository

import (
	"errors"
	"testing"

	"github.com/careform/backend/internal/model"
	"gorm.io/datatypes"
)

func TestTemplateRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewTemplateRepository(db)

	template := &model.AffidavitTemplate{
		Name:        "Records Affidavit",
		Description: "Standard records custodian affidavit",
		Elements:    datatypes.JSON(`[{"id":"a","type":"text"}]`),
	}
	if err := repo.Create(template); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByID(template.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "Records Affidavit" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
	if string(got.Elements) != `[{"id":"a","type":"text"}]` {
		t.Fatalf("unexpected elements: %s", got.Elements)
	}

	got.Description = "updated"
	if err := repo.Update(got); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if err := repo.Delete(template.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(template.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTemplateRepositoryListOrdersByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewTemplateRepository(db)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if err := repo.Create(&model.AffidavitTemplate{
			Name:     name,
			Elements: datatypes.JSON("[]"),
		}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	templates, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(templates))
	}
	if templates[0].Name != "Alpha" || templates[1].Name != "Mid" || templates[2].Name != "Zeta" {
		t.Fatalf("unexpected order: %s, %s, %s",
			templates[0].Name, templates[1].Name, templates[2].Name)
	}
}
