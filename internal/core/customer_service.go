package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerUpdate carries the fields of a partial customer update.
// Nil fields are left untouched; updated_at is always refreshed.
type CustomerUpdate struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// CustomerService manages the shop's customer records.
type CustomerService interface {
	CreateCustomer(ctx context.Context, name, phone string, email, address *string) (*Customer, error)
	// UpdateCustomer applies a partial update. Returns NotFoundError when the
	// id does not exist.
	UpdateCustomer(ctx context.Context, customerID int, upd CustomerUpdate) (*Customer, error)
	// GetCustomer returns nil (not an error) when the id does not exist.
	GetCustomer(ctx context.Context, customerID int) (*Customer, error)
	GetCustomers(ctx context.Context) ([]Customer, error)
}

type customerService struct {
	pool *pgxpool.Pool
}

// NewCustomerService constructs a CustomerService backed by PostgreSQL.
func NewCustomerService(pool *pgxpool.Pool) CustomerService {
	return &customerService{pool: pool}
}

const customerColumns = "id, name, phone, email, address, created_at, updated_at"

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, name, phone string, email, address *string) (*Customer, error) {
	c, err := scanCustomer(s.pool.QueryRow(ctx, `
		INSERT INTO customers (name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING `+customerColumns,
		name, phone, email, address))
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return c, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int, upd CustomerUpdate) (*Customer, error) {
	set := "updated_at = NOW()"
	args := []any{customerID}

	add := func(column string, value any) {
		args = append(args, value)
		set += fmt.Sprintf(", %s = $%d", column, len(args))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}

	c, err := scanCustomer(s.pool.QueryRow(ctx,
		"UPDATE customers SET "+set+" WHERE id = $1 RETURNING "+customerColumns, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "customer", ID: customerID}
		}
		return nil, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int) (*Customer, error) {
	c, err := scanCustomer(s.pool.QueryRow(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer %d: %w", customerID, err)
	}
	return c, nil
}

func (s *customerService) GetCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}
