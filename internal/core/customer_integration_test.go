package core_test

import (
	"context"
	"testing"

	"repairdesk/internal/core"
)

func TestCustomer_CreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	customers := core.NewCustomerService(pool)
	email := "siti@example.com"
	created, err := customers.CreateCustomer(ctx, "Siti Nurhaliza", "+62-812-333-444", &email, nil)
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}

	got, err := customers.GetCustomer(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCustomer failed: %v", err)
	}
	if got == nil || got.Name != "Siti Nurhaliza" {
		t.Errorf("Expected created customer back, got %+v", got)
	}
	if got.Email == nil || *got.Email != email {
		t.Errorf("Expected email %q, got %v", email, got.Email)
	}
	if got.Address != nil {
		t.Errorf("Expected nil address, got %v", got.Address)
	}
}

func TestCustomer_GetAbsentReturnsNil(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	customers := core.NewCustomerService(pool)
	got, err := customers.GetCustomer(ctx, 99999)
	if err != nil {
		t.Fatalf("GetCustomer failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for absent customer, got %+v", got)
	}
}

func TestCustomer_UpdatePartial(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	customers := core.NewCustomerService(pool)
	phone := "+62-899-777-888"
	updated, err := customers.UpdateCustomer(ctx, 1, core.CustomerUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateCustomer failed: %v", err)
	}
	if updated.Phone != phone {
		t.Errorf("Expected phone %q, got %q", phone, updated.Phone)
	}
	// Name untouched by the partial update.
	if updated.Name != "Arif Rahman" {
		t.Errorf("Expected name unchanged, got %q", updated.Name)
	}

	_, err = customers.UpdateCustomer(ctx, 99999, core.CustomerUpdate{Phone: &phone})
	if !core.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError for unknown customer, got %v", err)
	}
}
