package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ProductUpdate carries the fields of a partial product update.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Type          *ProductType
	Price         *decimal.Decimal
	StockQuantity *int
	MinimumStock  *int
}

// InventoryService manages products and keeps stock_quantity consistent with
// the applied history of stock movements and transaction items.
//
// The two mutation paths are deliberately asymmetric: manual movements apply
// their delta unconditionally (stock may go negative — oversell is recorded
// as-is), while transaction items enforce a hard floor at zero.
type InventoryService interface {
	CreateProduct(ctx context.Context, name string, description *string, typ ProductType,
		price decimal.Decimal, stockQuantity, minimumStock int) (*Product, error)
	UpdateProduct(ctx context.Context, productID int, upd ProductUpdate) (*Product, error)
	// GetProduct returns nil (not an error) when the id does not exist.
	GetProduct(ctx context.Context, productID int) (*Product, error)
	GetProducts(ctx context.Context) ([]Product, error)
	// GetLowStockProducts returns products with stock_quantity <= minimum_stock.
	GetLowStockProducts(ctx context.Context) ([]Product, error)

	// CreateStockMovement applies a manual adjustment: +quantity for "in",
	// -quantity for "out". The product row and the movement row are written in
	// one transaction. No lower bound is enforced.
	CreateStockMovement(ctx context.Context, productID int, typ MovementType, quantity int,
		pricePerUnit *decimal.Decimal, notes *string, createdBy int) (*StockMovement, error)
	GetStockMovements(ctx context.Context) ([]StockMovement, error)
	// GetStockMovementsByProduct returns movements newest-first.
	GetStockMovementsByProduct(ctx context.Context, productID int) ([]StockMovement, error)

	// DeductStockTx decrements stock within the caller's transaction, failing
	// with InsufficientStockError when quantity exceeds current stock. The
	// check and the decrement are one conditional UPDATE, so concurrent
	// deductions cannot both pass the sufficiency check.
	DeductStockTx(ctx context.Context, tx pgx.Tx, productID, quantity int) error
}

type inventoryService struct {
	pool *pgxpool.Pool
}

// NewInventoryService constructs an InventoryService backed by PostgreSQL.
func NewInventoryService(pool *pgxpool.Pool) InventoryService {
	return &inventoryService{pool: pool}
}

const productColumns = "id, name, description, type, price, stock_quantity, minimum_stock, created_at, updated_at"

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Price,
		&p.StockQuantity, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *inventoryService) CreateProduct(ctx context.Context, name string, description *string, typ ProductType,
	price decimal.Decimal, stockQuantity, minimumStock int) (*Product, error) {

	p, err := scanProduct(s.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, type, price, stock_quantity, minimum_stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		name, description, typ, price, stockQuantity, minimumStock))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, productID int, upd ProductUpdate) (*Product, error) {
	set := "updated_at = NOW()"
	args := []any{productID}

	add := func(column string, value any) {
		args = append(args, value)
		set += fmt.Sprintf(", %s = $%d", column, len(args))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.StockQuantity != nil {
		add("stock_quantity", *upd.StockQuantity)
	}
	if upd.MinimumStock != nil {
		add("minimum_stock", *upd.MinimumStock)
	}

	p, err := scanProduct(s.pool.QueryRow(ctx,
		"UPDATE products SET "+set+" WHERE id = $1 RETURNING "+productColumns, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "product", ID: productID}
		}
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return p, nil
}

func (s *inventoryService) GetProduct(ctx context.Context, productID int) (*Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product %d: %w", productID, err)
	}
	return p, nil
}

func (s *inventoryService) GetProducts(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY name, id")
}

func (s *inventoryService) GetLowStockProducts(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE stock_quantity <= minimum_stock ORDER BY name, id")
}

func (s *inventoryService) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// ── Stock movements ──────────────────────────────────────────────────────────

const movementColumns = "id, product_id, type, quantity, price_per_unit, notes, created_at, created_by"

func (s *inventoryService) CreateStockMovement(ctx context.Context, productID int, typ MovementType, quantity int,
	pricePerUnit *decimal.Decimal, notes *string, createdBy int) (*StockMovement, error) {

	delta := quantity
	if typ == MovementOut {
		delta = -quantity
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Single unconditional update: the movement is recorded even when it
	// drives stock negative.
	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity + $1, updated_at = NOW()
		WHERE id = $2
	`, delta, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock for product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, &NotFoundError{Entity: "product", ID: productID}
	}

	var m StockMovement
	err = tx.QueryRow(ctx, `
		INSERT INTO stock_movements (product_id, type, quantity, price_per_unit, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+movementColumns,
		productID, typ, quantity, pricePerUnit, notes, createdBy,
	).Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PricePerUnit, &m.Notes,
		&m.CreatedAt, &m.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stock movement: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stock movement: %w", err)
	}
	return &m, nil
}

func (s *inventoryService) GetStockMovements(ctx context.Context) ([]StockMovement, error) {
	return s.queryMovements(ctx,
		"SELECT "+movementColumns+" FROM stock_movements ORDER BY created_at DESC, id DESC")
}

func (s *inventoryService) GetStockMovementsByProduct(ctx context.Context, productID int) ([]StockMovement, error) {
	return s.queryMovements(ctx,
		"SELECT "+movementColumns+" FROM stock_movements WHERE product_id = $1 ORDER BY created_at DESC, id DESC",
		productID)
}

func (s *inventoryService) queryMovements(ctx context.Context, query string, args ...any) ([]StockMovement, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movements: %w", err)
	}
	defer rows.Close()

	var movements []StockMovement
	for rows.Next() {
		var m StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PricePerUnit,
			&m.Notes, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// ── Transaction-item deductions ──────────────────────────────────────────────

// DeductStockTx decrements stock_quantity by quantity within tx. The
// sufficiency check and the decrement are one conditional statement; when it
// affects no rows the product is re-read to tell NotFound from insufficient
// stock.
func (s *inventoryService) DeductStockTx(ctx context.Context, tx pgx.Tx, productID, quantity int) error {
	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity >= $1
	`, quantity, productID)
	if err != nil {
		return fmt.Errorf("failed to deduct stock for product %d: %w", productID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var available int
	err = tx.QueryRow(ctx, "SELECT stock_quantity FROM products WHERE id = $1", productID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Entity: "product", ID: productID}
		}
		return fmt.Errorf("failed to fetch product %d: %w", productID, err)
	}
	return &InsufficientStockError{ProductID: productID, Available: available, Requested: quantity}
}
