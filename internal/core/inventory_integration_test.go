package core_test

import (
	"context"
	"testing"

	"repairdesk/internal/core"

	"github.com/shopspring/decimal"
)

func TestInventory_MovementArithmetic(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	inv := core.NewInventoryService(pool)
	productID := seedProduct(t, ctx, pool, "LCD iPhone 11", "350000", 50, 5)

	steps := []struct {
		typ  core.MovementType
		qty  int
		want int
	}{
		{core.MovementIn, 30, 80},
		{core.MovementOut, 25, 55},
		{core.MovementIn, 10, 65},
	}
	for _, step := range steps {
		_, err := inv.CreateStockMovement(ctx, productID, step.typ, step.qty, nil, nil, 1)
		if err != nil {
			t.Fatalf("CreateStockMovement(%s, %d) failed: %v", step.typ, step.qty, err)
		}
		p, err := inv.GetProduct(ctx, productID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if p.StockQuantity != step.want {
			t.Errorf("After %s %d: expected stock %d, got %d", step.typ, step.qty, step.want, p.StockQuantity)
		}
	}

	movements, err := inv.GetStockMovementsByProduct(ctx, productID)
	if err != nil {
		t.Fatalf("GetStockMovementsByProduct failed: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("Expected 3 movements, got %d", len(movements))
	}
	// Newest first: the qty-10 "in" movement was recorded last.
	if movements[0].Quantity != 10 || movements[0].Type != core.MovementIn {
		t.Errorf("Expected newest movement in/10, got %s/%d", movements[0].Type, movements[0].Quantity)
	}
	if movements[2].Quantity != 30 {
		t.Errorf("Expected oldest movement qty 30, got %d", movements[2].Quantity)
	}
}

func TestInventory_MovementAllowsNegativeStock(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	inv := core.NewInventoryService(pool)
	productID := seedProduct(t, ctx, pool, "Charger Cable", "25000", 3, 0)

	// Manual "out" movements apply as-is, so oversell drives stock negative.
	_, err := inv.CreateStockMovement(ctx, productID, core.MovementOut, 10, nil, nil, 1)
	if err != nil {
		t.Fatalf("CreateStockMovement failed: %v", err)
	}

	p, err := inv.GetProduct(ctx, productID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p.StockQuantity != -7 {
		t.Errorf("Expected stock -7, got %d", p.StockQuantity)
	}
}

func TestInventory_MovementUnknownProduct(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	inv := core.NewInventoryService(pool)
	_, err := inv.CreateStockMovement(ctx, 99999, core.MovementIn, 5, nil, nil, 1)
	if !core.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestInventory_LowStockQuery(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	inv := core.NewInventoryService(pool)
	lowID := seedProduct(t, ctx, pool, "Battery A52", "180000", 2, 5)
	atMinID := seedProduct(t, ctx, pool, "Screen Protector", "15000", 5, 5)
	okID := seedProduct(t, ctx, pool, "Back Cover", "40000", 9, 5)

	products, err := inv.GetLowStockProducts(ctx)
	if err != nil {
		t.Fatalf("GetLowStockProducts failed: %v", err)
	}

	got := make(map[int]bool, len(products))
	for _, p := range products {
		got[p.ID] = true
	}
	if !got[lowID] {
		t.Error("Expected product below minimum in low-stock list")
	}
	if !got[atMinID] {
		t.Error("Expected product exactly at minimum in low-stock list (boundary is inclusive)")
	}
	if got[okID] {
		t.Error("Did not expect product above minimum in low-stock list")
	}
}

func TestInventory_UpdateProductPartial(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	inv := core.NewInventoryService(pool)
	productID := seedProduct(t, ctx, pool, "Speaker Module", "95000", 4, 2)

	newPrice := decimal.NewFromInt(105000)
	newMin := 3
	p, err := inv.UpdateProduct(ctx, productID, core.ProductUpdate{
		Price:        &newPrice,
		MinimumStock: &newMin,
	})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if !p.Price.Equal(newPrice) {
		t.Errorf("Expected price 105000, got %s", p.Price)
	}
	if p.MinimumStock != 3 {
		t.Errorf("Expected minimum_stock 3, got %d", p.MinimumStock)
	}
	// Untouched fields survive the partial update.
	if p.Name != "Speaker Module" {
		t.Errorf("Expected name unchanged, got %q", p.Name)
	}
	if p.StockQuantity != 4 {
		t.Errorf("Expected stock unchanged at 4, got %d", p.StockQuantity)
	}

	_, err = inv.UpdateProduct(ctx, 99999, core.ProductUpdate{MinimumStock: &newMin})
	if !core.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError for unknown product, got %v", err)
	}
}

func TestInventory_GetProductAbsentReturnsNil(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	inv := core.NewInventoryService(pool)
	p, err := inv.GetProduct(ctx, 99999)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p != nil {
		t.Errorf("Expected nil for absent product, got %+v", p)
	}
}
