package repository

import (
	"errors"
	"testing"

	"github.com/careform/backend/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB 打开内存库并迁移全部表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Patient{},
		&model.Provider{},
		&model.PatientProvider{},
		&model.AffidavitTemplate{},
		&model.Affidavit{},
		&model.AuditLog{},
	); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func TestPatientRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	patient := &model.Patient{
		FirstName: "Maria",
		LastName:  "Santos",
		Phone:     "555-0101",
	}
	if err := repo.Create(patient); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if patient.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetByID(patient.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.LastName != "Santos" {
		t.Fatalf("unexpected last name: %s", got.LastName)
	}

	got.Phone = "555-0202"
	if err := repo.Update(got); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	again, err := repo.GetByID(patient.ID)
	if err != nil {
		t.Fatalf("GetByID after update error: %v", err)
	}
	if again.Phone != "555-0202" {
		t.Fatalf("update not persisted: %s", again.Phone)
	}

	if err := repo.Delete(patient.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(patient.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPatientRepositoryListOrdersByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	for _, p := range []*model.Patient{
		{FirstName: "Bob", LastName: "Young"},
		{FirstName: "Ann", LastName: "Adams"},
		{FirstName: "Carl", LastName: "Adams"},
	} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	patients, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(patients))
	}
	if patients[0].FirstName != "Ann" || patients[1].FirstName != "Carl" || patients[2].FirstName != "Bob" {
		t.Fatalf("unexpected order: %s, %s, %s",
			patients[0].FirstName, patients[1].FirstName, patients[2].FirstName)
	}
}

func TestPatientRepositoryProviderLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)
	providerRepo := NewProviderRepository(db)

	patient := &model.Patient{FirstName: "Maria", LastName: "Santos"}
	if err := repo.Create(patient); err != nil {
		t.Fatalf("Create patient error: %v", err)
	}
	provider := &model.Provider{Name: "Lakeside Clinic", Specialty: "Cardiology"}
	if err := providerRepo.Create(provider); err != nil {
		t.Fatalf("Create provider error: %v", err)
	}

	if err := repo.LinkProvider(&model.PatientProvider{
		PatientID:  patient.ID,
		ProviderID: provider.ID,
	}); err != nil {
		t.Fatalf("LinkProvider error: %v", err)
	}

	got, err := repo.GetByID(patient.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(got.Providers) != 1 || got.Providers[0].Name != "Lakeside Clinic" {
		t.Fatalf("expected linked provider, got %+v", got.Providers)
	}

	if err := repo.UnlinkProvider(patient.ID, provider.ID); err != nil {
		t.Fatalf("UnlinkProvider error: %v", err)
	}
	got, err = repo.GetByID(patient.ID)
	if err != nil {
		t.Fatalf("GetByID after unlink error: %v", err)
	}
	if len(got.Providers) != 0 {
		t.Fatalf("expected no linked providers, got %d", len(got.Providers))
	}
}

// 删除患者时连带删除关联关系
func TestPatientRepositoryDeleteRemovesLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)
	providerRepo := NewProviderRepository(db)

	patient := &model.Patient{FirstName: "Maria", LastName: "Santos"}
	if err := repo.Create(patient); err != nil {
		t.Fatalf("Create patient error: %v", err)
	}
	provider := &model.Provider{Name: "Lakeside Clinic"}
	if err := providerRepo.Create(provider); err != nil {
		t.Fatalf("Create provider error: %v", err)
	}
	if err := repo.LinkProvider(&model.PatientProvider{
		PatientID:  patient.ID,
		ProviderID: provider.ID,
	}); err != nil {
		t.Fatalf("LinkProvider error: %v", err)
	}

	if err := repo.Delete(patient.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	var count int64
	if err := db.Model(&model.PatientProvider{}).
		Where("patient_id = ?", patient.ID).Count(&count).Error; err != nil {
		t.Fatalf("count links error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected links removed, got %d", count)
	}
}
