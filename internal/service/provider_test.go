package service

import (
	"context"
	"errors"
	"testing"

	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/model"
	"github.com/careform/backend/internal/repository"
	"github.com/careform/backend/internal/subscriber"
)

func TestProviderAttachHIPAASample(t *testing.T) {
	db := newTestDB(t)
	auditRepo := repository.NewAuditRepository(db)
	bus := eventbus.NewAuditEventBus()
	subscriber.NewAuditSubscriber(auditRepo).Register(bus)

	svc := NewProviderService(repository.NewProviderRepository(db), bus)
	ctx := context.Background()

	provider, err := svc.Create(ctx, 1, CreateProviderRequest{
		Name:      "Lakeside Clinic",
		Specialty: "Cardiology",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.AttachHIPAASample(ctx, 1, provider.ID, "data/uploads/sample.pdf")
	if err != nil {
		t.Fatalf("AttachHIPAASample error: %v", err)
	}
	if updated.HIPAASamplePath != "data/uploads/sample.pdf" {
		t.Fatalf("unexpected sample path: %s", updated.HIPAASamplePath)
	}

	trail, err := auditRepo.GetByEntity("provider", provider.ID)
	if err != nil {
		t.Fatalf("GetByEntity error: %v", err)
	}
	var uploaded bool
	for _, entry := range trail {
		if entry.Action == model.AuditActionUpload {
			uploaded = true
		}
	}
	if !uploaded {
		t.Fatalf("expected upload audit entry, trail: %+v", trail)
	}

	if _, err := svc.AttachHIPAASample(ctx, 1, 999, "x"); !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
}
