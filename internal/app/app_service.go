package app

import (
	"context"
	"fmt"

	"repairdesk/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

type appService struct {
	customers    core.CustomerService
	inventory    core.InventoryService
	tickets      core.TicketService
	transactions core.TransactionService
	users        core.UserService
	reports      core.ReportService

	validate *validator.Validate
	schemas  map[string]*jsonschema.Schema
}

// NewApplicationService wires the domain services into the RPC surface.
func NewApplicationService(
	customers core.CustomerService,
	inventory core.InventoryService,
	tickets core.TicketService,
	transactions core.TransactionService,
	users core.UserService,
	reports core.ReportService,
) ApplicationService {
	return &appService{
		customers:    customers,
		inventory:    inventory,
		tickets:      tickets,
		transactions: transactions,
		users:        users,
		reports:      reports,
		validate:     newValidator(),
		schemas:      buildRequestSchemas(),
	}
}

// nonNil keeps empty list results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ── Customers ────────────────────────────────────────────────────────────────

func (s *appService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*core.Customer, error) {
	if err := s.validateRequest("createCustomer", req); err != nil {
		return nil, err
	}
	return s.customers.CreateCustomer(ctx, req.Name, req.Phone, req.Email, req.Address)
}

func (s *appService) UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (*core.Customer, error) {
	if err := s.validateRequest("updateCustomer", req); err != nil {
		return nil, err
	}
	return s.customers.UpdateCustomer(ctx, req.ID, core.CustomerUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
}

func (s *appService) GetCustomers(ctx context.Context) ([]core.Customer, error) {
	customers, err := s.customers.GetCustomers(ctx)
	return nonNil(customers), err
}

func (s *appService) GetCustomer(ctx context.Context, customerID int) (*core.Customer, error) {
	return s.customers.GetCustomer(ctx, customerID)
}

// GetCustomerHistory bundles a customer's tickets and transactions. An
// unknown customer yields a history with empty lists rather than an error.
func (s *appService) GetCustomerHistory(ctx context.Context, customerID int) (*core.CustomerHistory, error) {
	services, err := s.tickets.GetServicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d history: %w", customerID, err)
	}
	transactions, err := s.transactions.GetTransactionsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d history: %w", customerID, err)
	}
	return &core.CustomerHistory{
		Services:     nonNil(services),
		Transactions: nonNil(transactions),
	}, nil
}

// ── Products & inventory ─────────────────────────────────────────────────────

func (s *appService) CreateProduct(ctx context.Context, req CreateProductRequest) (*core.Product, error) {
	if err := s.validateRequest("createProduct", req); err != nil {
		return nil, err
	}
	return s.inventory.CreateProduct(ctx, req.Name, req.Description, req.Type,
		req.Price, req.StockQuantity, req.MinimumStock)
}

func (s *appService) UpdateProduct(ctx context.Context, req UpdateProductRequest) (*core.Product, error) {
	if err := s.validateRequest("updateProduct", req); err != nil {
		return nil, err
	}
	return s.inventory.UpdateProduct(ctx, req.ID, core.ProductUpdate{
		Name:          req.Name,
		Description:   req.Description,
		Type:          req.Type,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		MinimumStock:  req.MinimumStock,
	})
}

func (s *appService) GetProducts(ctx context.Context) ([]core.Product, error) {
	products, err := s.inventory.GetProducts(ctx)
	return nonNil(products), err
}

func (s *appService) GetProduct(ctx context.Context, productID int) (*core.Product, error) {
	return s.inventory.GetProduct(ctx, productID)
}

func (s *appService) GetLowStockProducts(ctx context.Context) ([]core.Product, error) {
	products, err := s.inventory.GetLowStockProducts(ctx)
	return nonNil(products), err
}

func (s *appService) CreateStockMovement(ctx context.Context, actorID int, req CreateStockMovementRequest) (*core.StockMovement, error) {
	if err := s.validateRequest("createStockMovement", req); err != nil {
		return nil, err
	}
	return s.inventory.CreateStockMovement(ctx, req.ProductID, req.Type, req.Quantity,
		req.PricePerUnit, req.Notes, actorID)
}

func (s *appService) GetStockMovements(ctx context.Context) ([]core.StockMovement, error) {
	movements, err := s.inventory.GetStockMovements(ctx)
	return nonNil(movements), err
}

func (s *appService) GetStockMovementsByProduct(ctx context.Context, productID int) ([]core.StockMovement, error) {
	movements, err := s.inventory.GetStockMovementsByProduct(ctx, productID)
	return nonNil(movements), err
}

// ── Repair services ──────────────────────────────────────────────────────────

func (s *appService) CreateService(ctx context.Context, req CreateServiceRequest) (*core.Service, error) {
	if err := s.validateRequest("createService", req); err != nil {
		return nil, err
	}
	return s.tickets.CreateService(ctx, req.CustomerID, req.DeviceType, req.DeviceBrand,
		req.DeviceModel, req.ProblemDescription, req.EstimatedCost, req.TechnicianID)
}

func (s *appService) UpdateService(ctx context.Context, req UpdateServiceRequest) (*core.Service, error) {
	if err := s.validateRequest("updateService", req); err != nil {
		return nil, err
	}
	return s.tickets.UpdateService(ctx, req.ID, core.ServiceUpdate{
		DeviceType:         req.DeviceType,
		DeviceBrand:        req.DeviceBrand,
		DeviceModel:        req.DeviceModel,
		ProblemDescription: req.ProblemDescription,
		Diagnosis:          req.Diagnosis,
		RepairActions:      req.RepairActions,
		Status:             req.Status,
		EstimatedCost:      req.EstimatedCost,
		ActualCost:         req.ActualCost,
		TechnicianID:       req.TechnicianID,
	})
}

func (s *appService) GetServices(ctx context.Context) ([]core.Service, error) {
	services, err := s.tickets.GetServices(ctx)
	return nonNil(services), err
}

func (s *appService) GetService(ctx context.Context, serviceID int) (*core.Service, error) {
	return s.tickets.GetService(ctx, serviceID)
}

// ── Transactions ─────────────────────────────────────────────────────────────

func (s *appService) CreateTransaction(ctx context.Context, actorID int, req CreateTransactionRequest) (*core.Transaction, error) {
	if err := s.validateRequest("createTransaction", req); err != nil {
		return nil, err
	}
	in := core.TransactionInput{
		CustomerID:    req.CustomerID,
		Type:          req.Type,
		ServiceID:     req.ServiceID,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, core.TransactionItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return s.transactions.CreateTransaction(ctx, in, actorID)
}

func (s *appService) CreateTransactionItem(ctx context.Context, req CreateTransactionItemRequest) (*core.TransactionItem, error) {
	if err := s.validateRequest("createTransactionItem", req); err != nil {
		return nil, err
	}
	return s.transactions.CreateTransactionItem(ctx, req.TransactionID, req.ProductID,
		req.Quantity, req.UnitPrice)
}

func (s *appService) GetTransactions(ctx context.Context) ([]core.Transaction, error) {
	transactions, err := s.transactions.GetTransactions(ctx)
	return nonNil(transactions), err
}

func (s *appService) GetTransaction(ctx context.Context, transactionID int) (*core.Transaction, error) {
	return s.transactions.GetTransaction(ctx, transactionID)
}

// ── Users ────────────────────────────────────────────────────────────────────

func (s *appService) CreateUser(ctx context.Context, req CreateUserRequest) (*core.User, error) {
	if err := s.validateRequest("createUser", req); err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, req.Username, req.Email, req.Password, req.FullName, req.Role)
}

func (s *appService) GetUsers(ctx context.Context) ([]core.User, error) {
	users, err := s.users.GetUsers(ctx)
	return nonNil(users), err
}

func (s *appService) GetTechnicians(ctx context.Context) ([]core.User, error) {
	users, err := s.users.GetTechnicians(ctx)
	return nonNil(users), err
}

// ── Reports ──────────────────────────────────────────────────────────────────

func (s *appService) GetFinancialReport(ctx context.Context, req FinancialReportRequest) (*core.FinancialReport, error) {
	if err := s.validateRequest("getFinancialReport", req); err != nil {
		return nil, err
	}
	return s.reports.GetFinancialReport(ctx, req.Period, req.StartDate, req.EndDate)
}

func (s *appService) GetStockReport(ctx context.Context) ([]core.StockReportRow, error) {
	rows, err := s.reports.GetStockReport(ctx)
	return nonNil(rows), err
}

func (s *appService) GetDashboardStats(ctx context.Context) (*core.DashboardStats, error) {
	return s.reports.GetDashboardStats(ctx)
}

func (s *appService) RequestSchemas() map[string]*jsonschema.Schema {
	return s.schemas
}
