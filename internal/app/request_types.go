package app

import (
	"repairdesk/internal/core"

	"github.com/shopspring/decimal"
)

// ── Customers ────────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Email   *string `json:"email,omitempty" validate:"omitnil,email"`
	Address *string `json:"address,omitempty"`
}

type UpdateCustomerRequest struct {
	ID      int     `json:"id" validate:"required,gt=0"`
	Name    *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Phone   *string `json:"phone,omitempty" validate:"omitnil,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitnil,email"`
	Address *string `json:"address,omitempty"`
}

// ── Products & inventory ─────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required"`
	Description   *string          `json:"description,omitempty"`
	Type          core.ProductType `json:"type" validate:"required,oneof=sparepart accessory other"`
	Price         decimal.Decimal  `json:"price" validate:"gt=0"`
	StockQuantity int              `json:"stock_quantity" validate:"gte=0"`
	MinimumStock  int              `json:"minimum_stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	ID            int               `json:"id" validate:"required,gt=0"`
	Name          *string           `json:"name,omitempty" validate:"omitnil,min=1"`
	Description   *string           `json:"description,omitempty"`
	Type          *core.ProductType `json:"type,omitempty" validate:"omitnil,oneof=sparepart accessory other"`
	Price         *decimal.Decimal  `json:"price,omitempty" validate:"omitnil,gt=0"`
	StockQuantity *int              `json:"stock_quantity,omitempty"`
	MinimumStock  *int              `json:"minimum_stock,omitempty" validate:"omitnil,gte=0"`
}

type CreateStockMovementRequest struct {
	ProductID    int               `json:"product_id" validate:"required,gt=0"`
	Type         core.MovementType `json:"type" validate:"required,oneof=in out"`
	Quantity     int               `json:"quantity" validate:"required,gt=0"`
	PricePerUnit *decimal.Decimal  `json:"price_per_unit,omitempty" validate:"omitnil,gte=0"`
	Notes        *string           `json:"notes,omitempty"`
}

// ── Repair services ──────────────────────────────────────────────────────────

type CreateServiceRequest struct {
	CustomerID         int              `json:"customer_id" validate:"required,gt=0"`
	DeviceType         string           `json:"device_type" validate:"required"`
	DeviceBrand        string           `json:"device_brand" validate:"required"`
	DeviceModel        string           `json:"device_model" validate:"required"`
	ProblemDescription string           `json:"problem_description" validate:"required"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost,omitempty" validate:"omitnil,gte=0"`
	TechnicianID       *int             `json:"technician_id,omitempty" validate:"omitnil,gt=0"`
}

type UpdateServiceRequest struct {
	ID                 int                 `json:"id" validate:"required,gt=0"`
	DeviceType         *string             `json:"device_type,omitempty" validate:"omitnil,min=1"`
	DeviceBrand        *string             `json:"device_brand,omitempty" validate:"omitnil,min=1"`
	DeviceModel        *string             `json:"device_model,omitempty" validate:"omitnil,min=1"`
	ProblemDescription *string             `json:"problem_description,omitempty" validate:"omitnil,min=1"`
	Diagnosis          *string             `json:"diagnosis,omitempty"`
	RepairActions      *string             `json:"repair_actions,omitempty"`
	Status             *core.ServiceStatus `json:"status,omitempty" validate:"omitnil,oneof=pending in_progress completed cancelled"`
	EstimatedCost      *decimal.Decimal    `json:"estimated_cost,omitempty" validate:"omitnil,gte=0"`
	ActualCost         *decimal.Decimal    `json:"actual_cost,omitempty" validate:"omitnil,gte=0"`
	TechnicianID       *int                `json:"technician_id,omitempty" validate:"omitnil,gt=0"`
}

// ── Transactions ─────────────────────────────────────────────────────────────

type TransactionItemRequest struct {
	ProductID int             `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

type CreateTransactionRequest struct {
	CustomerID    int                      `json:"customer_id" validate:"required,gt=0"`
	ServiceID     *int                     `json:"service_id,omitempty" validate:"omitnil,gt=0"`
	Type          core.TransactionType     `json:"type" validate:"required,oneof=sale service"`
	TotalAmount   decimal.Decimal          `json:"total_amount" validate:"gte=0"`
	PaidAmount    decimal.Decimal          `json:"paid_amount" validate:"gte=0"`
	PaymentMethod *string                  `json:"payment_method,omitempty"`
	Notes         *string                  `json:"notes,omitempty"`
	Items         []TransactionItemRequest `json:"items,omitempty" validate:"dive"`
}

type CreateTransactionItemRequest struct {
	TransactionID int             `json:"transaction_id" validate:"required,gt=0"`
	ProductID     int             `json:"product_id" validate:"required,gt=0"`
	Quantity      int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// ── Users ────────────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin technician cashier"`
}

// ── Reports ──────────────────────────────────────────────────────────────────

// FinancialReportRequest selects an inclusive date range. Period is a label
// echoed back on the report; the range alone decides which rows are counted.
type FinancialReportRequest struct {
	Period    string `json:"period" validate:"required,oneof=daily weekly monthly"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}
