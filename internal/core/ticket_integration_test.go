package core_test

import (
	"context"
	"testing"

	"repairdesk/internal/core"

	"github.com/shopspring/decimal"
)

func statusPtr(s core.ServiceStatus) *core.ServiceStatus { return &s }

func TestTicket_CreateService(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	tickets := core.NewTicketService(pool)
	est := decimal.NewFromInt(250000)
	techID := 2

	svc, err := tickets.CreateService(ctx, 1, "smartphone", "Samsung", "A52",
		"screen cracked, touch unresponsive", &est, &techID)
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if svc.Status != core.ServicePending {
		t.Errorf("Expected pending, got %s", svc.Status)
	}
	if svc.CompletedAt != nil {
		t.Error("New service must not have completed_at")
	}
	if svc.TechnicianID == nil || *svc.TechnicianID != 2 {
		t.Errorf("Expected technician 2, got %v", svc.TechnicianID)
	}
}

func TestTicket_CreateServiceUnknownCustomer(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	tickets := core.NewTicketService(pool)
	_, err := tickets.CreateService(ctx, 99999, "laptop", "Asus", "X441",
		"does not boot", nil, nil)
	if !core.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestTicket_CompletedAtLifecycle(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	tickets := core.NewTicketService(pool)
	svc, err := tickets.CreateService(ctx, 1, "smartphone", "Xiaomi", "Note 10",
		"battery drains in an hour", nil, nil)
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	// pending → in_progress: no completion timestamp yet.
	svc, err = tickets.UpdateService(ctx, svc.ID, core.ServiceUpdate{
		Status: statusPtr(core.ServiceInProgress),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if svc.CompletedAt != nil {
		t.Error("in_progress service must not have completed_at")
	}

	// First transition into completed sets completed_at.
	svc, err = tickets.UpdateService(ctx, svc.ID, core.ServiceUpdate{
		Status: statusPtr(core.ServiceCompleted),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if svc.CompletedAt == nil {
		t.Fatal("completed service must have completed_at")
	}
	firstCompleted := *svc.CompletedAt

	// Reopening never clears it.
	svc, err = tickets.UpdateService(ctx, svc.ID, core.ServiceUpdate{
		Status: statusPtr(core.ServiceInProgress),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if svc.CompletedAt == nil || !svc.CompletedAt.Equal(firstCompleted) {
		t.Errorf("Expected completed_at preserved at %v, got %v", firstCompleted, svc.CompletedAt)
	}

	// Completing a second time keeps the original timestamp.
	svc, err = tickets.UpdateService(ctx, svc.ID, core.ServiceUpdate{
		Status: statusPtr(core.ServiceCompleted),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if svc.CompletedAt == nil || !svc.CompletedAt.Equal(firstCompleted) {
		t.Errorf("Expected completed_at unchanged at %v, got %v", firstCompleted, svc.CompletedAt)
	}
}

func TestTicket_UpdateDiagnosisAndCost(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	tickets := core.NewTicketService(pool)
	svc, err := tickets.CreateService(ctx, 2, "laptop", "Lenovo", "T480",
		"keyboard not responding", nil, nil)
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	diagnosis := "ribbon cable loose"
	actions := "reseated cable, replaced two keycaps"
	actual := decimal.NewFromInt(150000)
	svc, err = tickets.UpdateService(ctx, svc.ID, core.ServiceUpdate{
		Diagnosis:     &diagnosis,
		RepairActions: &actions,
		ActualCost:    &actual,
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if svc.Diagnosis == nil || *svc.Diagnosis != diagnosis {
		t.Errorf("Expected diagnosis %q, got %v", diagnosis, svc.Diagnosis)
	}
	if svc.ActualCost == nil || !svc.ActualCost.Equal(actual) {
		t.Errorf("Expected actual_cost 150000, got %v", svc.ActualCost)
	}
	// Status untouched by a partial update.
	if svc.Status != core.ServicePending {
		t.Errorf("Expected status pending, got %s", svc.Status)
	}

	_, err = tickets.UpdateService(ctx, 99999, core.ServiceUpdate{Diagnosis: &diagnosis})
	if !core.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError for unknown service, got %v", err)
	}
}

func TestTicket_GetServicesByCustomer(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	tickets := core.NewTicketService(pool)
	if _, err := tickets.CreateService(ctx, 1, "smartphone", "Oppo", "A17", "no signal", nil, nil); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if _, err := tickets.CreateService(ctx, 2, "tablet", "Apple", "iPad 9", "cracked glass", nil, nil); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	services, err := tickets.GetServicesByCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("GetServicesByCustomer failed: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("Expected 1 service for customer 1, got %d", len(services))
	}
	if services[0].DeviceBrand != "Oppo" {
		t.Errorf("Expected Oppo service, got %s", services[0].DeviceBrand)
	}
}
