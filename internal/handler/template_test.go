package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
	"github.com/careform/backend/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

func newTemplateRouter(t *testing.T) (*gin.Engine, repository.TemplateRepository, repository.AffidavitRepository) {
	t.Helper()
	db, _ := newTestStack(t)
	templateRepo := repository.NewTemplateRepository(db)
	affidavitRepo := repository.NewAffidavitRepository(db)
	h := NewTemplateHandler(service.NewTemplateService(templateRepo, affidavitRepo, nil))

	r := gin.New()
	r.GET("/api/templates/:id", h.Get)
	r.POST("/api/templates", h.Create)
	r.DELETE("/api/templates/:id", h.Delete)
	r.GET("/api/templates/placeholders", h.Placeholders)
	r.GET("/api/templates/:id/export/pdf", h.ExportPDF)
	return r, templateRepo, affidavitRepo
}

func TestTemplateHandlerCreateAndGet(t *testing.T) {
	r, _, _ := newTemplateRouter(t)

	w := postJSON(t, r, "/api/templates", map[string]any{
		"name":     "Records Affidavit",
		"elements": []map[string]any{{"id": "rect-1", "kind": "rectangle", "geometry": map[string]any{"x": 1, "y": 2}}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/templates/1", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	if got.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", got.Code, got.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/templates/999", nil)
	got = httptest.NewRecorder()
	r.ServeHTTP(got, req)
	if got.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.Code)
	}
}

func TestTemplateHandlerDeleteConflictWhenReferenced(t *testing.T) {
	r, templateRepo, affidavitRepo := newTemplateRouter(t)

	template := &model.AffidavitTemplate{Name: "Used", Elements: datatypes.JSON("[]")}
	if err := templateRepo.Create(template); err != nil {
		t.Fatalf("create template error: %v", err)
	}
	if err := affidavitRepo.Create(&model.Affidavit{
		TemplateID: template.ID,
		PatientID:  1,
		ProviderID: 1,
	}); err != nil {
		t.Fatalf("create affidavit error: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/templates/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTemplateHandlerPlaceholders(t *testing.T) {
	r, _, _ := newTemplateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/templates/placeholders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestTemplateHandlerExportPDFNotImplemented(t *testing.T) {
	r, _, _ := newTemplateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/templates/1/export/pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}
}
