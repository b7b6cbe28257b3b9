package app

import (
	"context"

	"repairdesk/internal/core"

	"github.com/invopop/jsonschema"
)

// ApplicationService is the typed RPC surface consumed by the web adapter:
// one method per procedure. Every input is validated before any mutation runs;
// list methods always return non-nil slices; get-by-id methods return nil when
// the id does not exist (update methods return NotFoundError instead).
//
// actorID on mutations is the authenticated caller's user id, supplied by the
// identity middleware and threaded explicitly — never read from global state.
type ApplicationService interface {
	// Customers
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*core.Customer, error)
	UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (*core.Customer, error)
	GetCustomers(ctx context.Context) ([]core.Customer, error)
	GetCustomer(ctx context.Context, customerID int) (*core.Customer, error)
	// GetCustomerHistory returns the customer's services and transactions.
	GetCustomerHistory(ctx context.Context, customerID int) (*core.CustomerHistory, error)

	// Products & inventory
	CreateProduct(ctx context.Context, req CreateProductRequest) (*core.Product, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (*core.Product, error)
	GetProducts(ctx context.Context) ([]core.Product, error)
	GetProduct(ctx context.Context, productID int) (*core.Product, error)
	GetLowStockProducts(ctx context.Context) ([]core.Product, error)
	CreateStockMovement(ctx context.Context, actorID int, req CreateStockMovementRequest) (*core.StockMovement, error)
	GetStockMovements(ctx context.Context) ([]core.StockMovement, error)
	GetStockMovementsByProduct(ctx context.Context, productID int) ([]core.StockMovement, error)

	// Repair services
	CreateService(ctx context.Context, req CreateServiceRequest) (*core.Service, error)
	UpdateService(ctx context.Context, req UpdateServiceRequest) (*core.Service, error)
	GetServices(ctx context.Context) ([]core.Service, error)
	GetService(ctx context.Context, serviceID int) (*core.Service, error)

	// Transactions
	CreateTransaction(ctx context.Context, actorID int, req CreateTransactionRequest) (*core.Transaction, error)
	CreateTransactionItem(ctx context.Context, req CreateTransactionItemRequest) (*core.TransactionItem, error)
	GetTransactions(ctx context.Context) ([]core.Transaction, error)
	GetTransaction(ctx context.Context, transactionID int) (*core.Transaction, error)

	// Users
	CreateUser(ctx context.Context, req CreateUserRequest) (*core.User, error)
	GetUsers(ctx context.Context) ([]core.User, error)
	GetTechnicians(ctx context.Context) ([]core.User, error)

	// Reports
	GetFinancialReport(ctx context.Context, req FinancialReportRequest) (*core.FinancialReport, error)
	GetStockReport(ctx context.Context) ([]core.StockReportRow, error)
	GetDashboardStats(ctx context.Context) (*core.DashboardStats, error)

	// RequestSchemas returns the JSON Schema of every mutation request type,
	// keyed by procedure name, for the form-driven client to introspect.
	RequestSchemas() map[string]*jsonschema.Schema
}
