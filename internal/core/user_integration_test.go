package core_test

import (
	"context"
	"testing"

	"repairdesk/internal/core"

	"golang.org/x/crypto/bcrypt"
)

func TestUser_CreateHashesPassword(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	users := core.NewUserService(pool, core.BcryptHasher{})
	user, err := users.CreateUser(ctx, "rina", "rina@shop.test", "s3cret-pass", "Rina Wijaya", "cashier")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Error("Password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("Stored hash does not verify against the password: %v", err)
	}
}

func TestUser_DuplicateUsernameIsUniqueViolation(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	users := core.NewUserService(pool, core.BcryptHasher{})
	_, err := users.CreateUser(ctx, "counter", "another@shop.test", "whatever1", "Dup", "cashier")
	if !core.IsUniqueViolation(err) {
		t.Fatalf("Expected unique violation for duplicate username, got %v", err)
	}
}

func TestUser_GetTechniciansFiltersRoleAndActive(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	users := core.NewUserService(pool, core.BcryptHasher{})
	technicians, err := users.GetTechnicians(ctx)
	if err != nil {
		t.Fatalf("GetTechnicians failed: %v", err)
	}
	// Seed has one active technician (budi) and one inactive.
	if len(technicians) != 1 {
		t.Fatalf("Expected 1 active technician, got %d", len(technicians))
	}
	if technicians[0].Username != "budi" {
		t.Errorf("Expected budi, got %s", technicians[0].Username)
	}
}
