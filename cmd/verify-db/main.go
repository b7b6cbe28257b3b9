// Command verify-db checks database connectivity and the presence of every
// table the server expects. Intended as a post-migration smoke check.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var expectedTables = []string{
	"users",
	"customers",
	"products",
	"stock_movements",
	"services",
	"transactions",
	"transaction_items",
	"schema_migrations",
}

func main() {
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		log.Fatal("[CONNECT] DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("[CONNECT] failed to create pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("[CONNECT] failed to ping database: %v", err)
	}
	log.Println("[CONNECT] success")

	failed := false
	for _, table := range expectedTables {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)",
			table).Scan(&exists)
		if err != nil {
			log.Fatalf("[CHECK] failed to query information_schema for %s: %v", table, err)
		}
		if !exists {
			log.Printf("[MISSING] %s", table)
			failed = true
			continue
		}

		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			log.Fatalf("[CHECK] failed to count %s: %v", table, err)
		}
		log.Printf("[OK] %s (%d rows)", table, count)
	}

	if failed {
		log.Fatal("[FAIL] schema incomplete, run cmd/migrate first")
	}
	log.Println("[DONE] schema verified")
}
