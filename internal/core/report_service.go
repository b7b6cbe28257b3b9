package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// StockReportRow is the per-product rollup of the stock report.
// StockValue is stock_quantity × price at full decimal precision.
type StockReportRow struct {
	ProductID     int             `json:"product_id"`
	ProductName   string          `json:"product_name"`
	ProductType   ProductType     `json:"product_type"`
	StockQuantity int             `json:"stock_quantity"`
	MinimumStock  int             `json:"minimum_stock"`
	StockIn       int             `json:"stock_in"`
	StockOut      int             `json:"stock_out"`
	StockValue    decimal.Decimal `json:"stock_value"`
	IsLowStock    bool            `json:"is_low_stock"`
}

// FinancialReport is the per-period revenue rollup. Period is a label only;
// the date range alone drives the filter.
type FinancialReport struct {
	Period            string          `json:"period"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	ServiceRevenue    decimal.Decimal `json:"service_revenue"`
	SalesRevenue      decimal.Decimal `json:"sales_revenue"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
}

// DashboardStats are independent point-in-time counters; no shared snapshot.
type DashboardStats struct {
	TotalCustomers         int             `json:"total_customers"`
	PendingServices        int             `json:"pending_services"`
	CompletedServicesToday int             `json:"completed_services_today"`
	LowStockProducts       int             `json:"low_stock_products"`
	TodayRevenue           decimal.Decimal `json:"today_revenue"`
	MonthRevenue           decimal.Decimal `json:"month_revenue"`
}

// ReportService provides read-only aggregate queries over the entity store.
type ReportService interface {
	// GetStockReport returns one row per product. No ordering guarantee.
	GetStockReport(ctx context.Context) ([]StockReportRow, error)
	// GetFinancialReport aggregates transactions with
	// startDate <= created_at <= endDate (inclusive date strings, YYYY-MM-DD).
	// An empty window yields all-zero numeric fields, not an error.
	GetFinancialReport(ctx context.Context, period, startDate, endDate string) (*FinancialReport, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type reportService struct {
	pool *pgxpool.Pool
}

// NewReportService constructs a ReportService backed by the given pool.
func NewReportService(pool *pgxpool.Pool) ReportService {
	return &reportService{pool: pool}
}

// ── Stock report ─────────────────────────────────────────────────────────────

func (s *reportService) GetStockReport(ctx context.Context) ([]StockReportRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.name, p.type, p.stock_quantity, p.minimum_stock, p.price,
		       COALESCE(SUM(sm.quantity) FILTER (WHERE sm.type = 'in'),  0),
		       COALESCE(SUM(sm.quantity) FILTER (WHERE sm.type = 'out'), 0)
		FROM products p
		LEFT JOIN stock_movements sm ON sm.product_id = p.id
		GROUP BY p.id
		ORDER BY p.name, p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock report: %w", err)
	}
	defer rows.Close()

	var report []StockReportRow
	for rows.Next() {
		var r StockReportRow
		var price decimal.Decimal
		if err := rows.Scan(&r.ProductID, &r.ProductName, &r.ProductType,
			&r.StockQuantity, &r.MinimumStock, &price, &r.StockIn, &r.StockOut); err != nil {
			return nil, fmt.Errorf("failed to scan stock report row: %w", err)
		}
		r.StockValue = price.Mul(decimal.NewFromInt(int64(r.StockQuantity)))
		r.IsLowStock = r.StockQuantity <= r.MinimumStock
		report = append(report, r)
	}
	return report, rows.Err()
}

// ── Financial report ─────────────────────────────────────────────────────────

func (s *reportService) GetFinancialReport(ctx context.Context, period, startDate, endDate string) (*FinancialReport, error) {
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return nil, fmt.Errorf("invalid start_date %q: %w", startDate, err)
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return nil, fmt.Errorf("invalid end_date %q: %w", endDate, err)
	}

	report := &FinancialReport{Period: period, StartDate: startDate, EndDate: endDate}

	// End date is inclusive: the window runs to the start of the next day.
	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount) FILTER (WHERE type = 'service'), 0),
		       COALESCE(SUM(total_amount) FILTER (WHERE type = 'sale'),    0),
		       COALESCE(SUM(total_amount), 0),
		       COUNT(*)
		FROM transactions
		WHERE created_at >= $1::date
		  AND created_at <  $2::date + INTERVAL '1 day'`,
		startDate, endDate,
	).Scan(&report.ServiceRevenue, &report.SalesRevenue, &report.TotalRevenue, &report.TotalTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial report: %w", err)
	}
	return report, nil
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func (s *reportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counters := []struct {
		query string
		dest  any
	}{
		{"SELECT COUNT(*) FROM customers", &stats.TotalCustomers},
		{"SELECT COUNT(*) FROM services WHERE status = 'pending'", &stats.PendingServices},
		{`SELECT COUNT(*) FROM services
		  WHERE completed_at >= date_trunc('day', NOW())
		    AND completed_at <  date_trunc('day', NOW()) + INTERVAL '1 day'`, &stats.CompletedServicesToday},
		{"SELECT COUNT(*) FROM products WHERE stock_quantity <= minimum_stock", &stats.LowStockProducts},
		{`SELECT COALESCE(SUM(paid_amount), 0) FROM transactions
		  WHERE created_at >= date_trunc('day', NOW())
		    AND created_at <  date_trunc('day', NOW()) + INTERVAL '1 day'`, &stats.TodayRevenue},
		{`SELECT COALESCE(SUM(paid_amount), 0) FROM transactions
		  WHERE created_at >= date_trunc('month', NOW())`, &stats.MonthRevenue},
	}

	for _, c := range counters {
		if err := s.pool.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
		}
	}
	return stats, nil
}
