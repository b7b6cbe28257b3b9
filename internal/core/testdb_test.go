package core_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean and seed test DB
	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE transaction_items, transactions, services, stock_movements,
			products, customers, users RESTART IDENTITY CASCADE;

		INSERT INTO users (id, username, email, password_hash, full_name, role, is_active) VALUES
		(1, 'counter',  'counter@shop.test', 'x', 'Counter Staff', 'cashier',    true),
		(2, 'budi',     'budi@shop.test',    'x', 'Budi Santoso',  'technician', true),
		(3, 'inactive', 'old@shop.test',     'x', 'Former Tech',   'technician', false);
		SELECT setval('users_id_seq', 3);

		INSERT INTO customers (id, name, phone, email) VALUES
		(1, 'Arif Rahman', '+62-811-000-111', 'arif@example.com'),
		(2, 'Dewi Lestari', '+62-811-000-222', NULL);
		SELECT setval('customers_id_seq', 2);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return pool
}

// seedProduct inserts a product and returns its id.
func seedProduct(t *testing.T, ctx context.Context, pool *pgxpool.Pool, name string, price string, stock, minimum int) int {
	t.Helper()
	var id int
	err := pool.QueryRow(ctx, `
		INSERT INTO products (name, type, price, stock_quantity, minimum_stock)
		VALUES ($1, 'sparepart', $2, $3, $4)
		RETURNING id`, name, price, stock, minimum).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed product %s: %v", name, err)
	}
	return id
}
