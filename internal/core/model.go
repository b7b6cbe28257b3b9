package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductSparepart ProductType = "sparepart"
	ProductAccessory ProductType = "accessory"
	ProductOther     ProductType = "other"
)

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "pending"
	ServiceInProgress ServiceStatus = "in_progress"
	ServiceCompleted  ServiceStatus = "completed"
	ServiceCancelled  ServiceStatus = "cancelled"
)

type TransactionType string

const (
	TransactionTypeSale    TransactionType = "sale"
	TransactionTypeService TransactionType = "service"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Type          ProductType     `json:"type"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	MinimumStock  int             `json:"minimum_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsLowStock reports whether the product sits at or below its minimum stock.
// The boundary is inclusive: stock exactly at minimum counts as low.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinimumStock
}

// StockMovement is a manual inventory adjustment, distinct from the deductions
// driven by transaction items. Immutable once created.
type StockMovement struct {
	ID           int              `json:"id"`
	ProductID    int              `json:"product_id"`
	Type         MovementType     `json:"type"`
	Quantity     int              `json:"quantity"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	CreatedBy    int              `json:"created_by"`
}

// Service is a repair ticket for a customer's device.
type Service struct {
	ID                 int              `json:"id"`
	CustomerID         int              `json:"customer_id"`
	DeviceType         string           `json:"device_type"`
	DeviceBrand        string           `json:"device_brand"`
	DeviceModel        string           `json:"device_model"`
	ProblemDescription string           `json:"problem_description"`
	Diagnosis          *string          `json:"diagnosis,omitempty"`
	RepairActions      *string          `json:"repair_actions,omitempty"`
	Status             ServiceStatus    `json:"status"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost         *decimal.Decimal `json:"actual_cost,omitempty"`
	TechnicianID       *int             `json:"technician_id,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type Transaction struct {
	ID            int               `json:"id"`
	CustomerID    int               `json:"customer_id"`
	Type          TransactionType   `json:"type"`
	ServiceID     *int              `json:"service_id,omitempty"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	PaidAmount    decimal.Decimal   `json:"paid_amount"`
	PaymentMethod *string           `json:"payment_method,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	CreatedBy     int               `json:"created_by"`
	Items         []TransactionItem `json:"items,omitempty"`
}

// TransactionItem is a line item of a sale/service transaction. Creating one
// deducts the product's stock; TotalPrice is always Quantity × UnitPrice.
type TransactionItem struct {
	ID            int             `json:"id"`
	TransactionID int             `json:"transaction_id"`
	ProductID     int             `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CustomerHistory bundles a customer's repair tickets and transactions.
type CustomerHistory struct {
	Services     []Service     `json:"services"`
	Transactions []Transaction `json:"transactions"`
}
