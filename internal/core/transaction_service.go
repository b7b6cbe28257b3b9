package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionItemInput is a requested line item on a new transaction.
type TransactionItemInput struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}

// TransactionInput is the input for creating a transaction, optionally with
// inline items. Items deduct stock within the same database transaction, so a
// rejected item rolls back the whole call.
type TransactionInput struct {
	CustomerID    int
	Type          TransactionType
	ServiceID     *int
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod *string
	Notes         *string
	Items         []TransactionItemInput
}

// TransactionService records sale and service transactions and their line
// items, deducting inventory through the InventoryService.
type TransactionService interface {
	CreateTransaction(ctx context.Context, in TransactionInput, createdBy int) (*Transaction, error)
	// CreateTransactionItem appends an item to an existing transaction,
	// deducting stock atomically. Fails with InsufficientStockError when
	// quantity exceeds current stock; stock is left unchanged on failure.
	CreateTransactionItem(ctx context.Context, transactionID, productID, quantity int,
		unitPrice decimal.Decimal) (*TransactionItem, error)
	// GetTransaction returns nil (not an error) when the id does not exist.
	// Items are included.
	GetTransaction(ctx context.Context, transactionID int) (*Transaction, error)
	GetTransactions(ctx context.Context) ([]Transaction, error)
	GetTransactionsByCustomer(ctx context.Context, customerID int) ([]Transaction, error)
}

type transactionService struct {
	pool      *pgxpool.Pool
	inventory InventoryService
}

// NewTransactionService constructs a TransactionService backed by PostgreSQL.
func NewTransactionService(pool *pgxpool.Pool, inventory InventoryService) TransactionService {
	return &transactionService{pool: pool, inventory: inventory}
}

const transactionColumns = `id, customer_id, type, service_id, total_amount, paid_amount,
	payment_method, notes, created_at, created_by`

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.CustomerID, &t.Type, &t.ServiceID, &t.TotalAmount,
		&t.PaidAmount, &t.PaymentMethod, &t.Notes, &t.CreatedAt, &t.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, in TransactionInput, createdBy int) (*Transaction, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)", in.CustomerID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check customer %d: %w", in.CustomerID, err)
	}
	if !exists {
		return nil, &NotFoundError{Entity: "customer", ID: in.CustomerID}
	}

	if in.ServiceID != nil {
		if err := tx.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)", *in.ServiceID,
		).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check service %d: %w", *in.ServiceID, err)
		}
		if !exists {
			return nil, &NotFoundError{Entity: "service", ID: *in.ServiceID}
		}
	}

	t, err := scanTransaction(tx.QueryRow(ctx, `
		INSERT INTO transactions (customer_id, type, service_id, total_amount, paid_amount,
			payment_method, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		in.CustomerID, in.Type, in.ServiceID, in.TotalAmount, in.PaidAmount,
		in.PaymentMethod, in.Notes, createdBy))
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	for i, item := range in.Items {
		ti, err := s.createItemTx(ctx, tx, t.ID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		t.Items = append(t.Items, *ti)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction creation: %w", err)
	}
	return t, nil
}

func (s *transactionService) CreateTransactionItem(ctx context.Context, transactionID, productID, quantity int,
	unitPrice decimal.Decimal) (*TransactionItem, error) {

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)", transactionID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check transaction %d: %w", transactionID, err)
	}
	if !exists {
		return nil, &NotFoundError{Entity: "transaction", ID: transactionID}
	}

	item, err := s.createItemTx(ctx, tx, transactionID, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction item: %w", err)
	}
	return item, nil
}

// createItemTx deducts stock and inserts the item row within tx.
func (s *transactionService) createItemTx(ctx context.Context, tx pgx.Tx, transactionID, productID, quantity int,
	unitPrice decimal.Decimal) (*TransactionItem, error) {

	if err := s.inventory.DeductStockTx(ctx, tx, productID, quantity); err != nil {
		return nil, err
	}

	totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	var item TransactionItem
	err := tx.QueryRow(ctx, `
		INSERT INTO transaction_items (transaction_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, transaction_id, product_id, quantity, unit_price, total_price, created_at`,
		transactionID, productID, quantity, unitPrice, totalPrice,
	).Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity,
		&item.UnitPrice, &item.TotalPrice, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction item: %w", err)
	}
	return &item, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *transactionService) GetTransaction(ctx context.Context, transactionID int) (*Transaction, error) {
	t, err := scanTransaction(s.pool.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = $1", transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch transaction %d: %w", transactionID, err)
	}

	items, err := s.fetchItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return t, nil
}

func (s *transactionService) GetTransactions(ctx context.Context) ([]Transaction, error) {
	return s.queryTransactions(ctx,
		"SELECT "+transactionColumns+" FROM transactions ORDER BY id DESC")
}

func (s *transactionService) GetTransactionsByCustomer(ctx context.Context, customerID int) ([]Transaction, error) {
	return s.queryTransactions(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE customer_id = $1 ORDER BY id DESC", customerID)
}

func (s *transactionService) queryTransactions(ctx context.Context, query string, args ...any) ([]Transaction, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (s *transactionService) fetchItems(ctx context.Context, transactionID int) ([]TransactionItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, transaction_id, product_id, quantity, unit_price, total_price, created_at
		FROM transaction_items
		WHERE transaction_id = $1
		ORDER BY id`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction items: %w", err)
	}
	defer rows.Close()

	var items []TransactionItem
	for rows.Next() {
		var item TransactionItem
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
