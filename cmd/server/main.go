package main

import (
	"context"
	"net/http"
	"os"

	webAdapter "repairdesk/internal/adapters/web"
	"repairdesk/internal/app"
	"repairdesk/internal/core"
	"repairdesk/internal/db"
	"repairdesk/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	log := logger.Get()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	customers := core.NewCustomerService(pool)
	inventory := core.NewInventoryService(pool)
	tickets := core.NewTicketService(pool)
	transactions := core.NewTransactionService(pool, inventory)
	users := core.NewUserService(pool, core.BcryptHasher{})
	reports := core.NewReportService(pool)

	svc := app.NewApplicationService(customers, inventory, tickets, transactions, users, reports)

	jwtSecret := os.Getenv("AUTH_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is not set")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
