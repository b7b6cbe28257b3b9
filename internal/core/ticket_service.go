package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ServiceUpdate carries the fields of a partial service-ticket update.
// Nil fields are left untouched; updated_at is always refreshed.
type ServiceUpdate struct {
	DeviceType         *string
	DeviceBrand        *string
	DeviceModel        *string
	ProblemDescription *string
	Diagnosis          *string
	RepairActions      *string
	Status             *ServiceStatus
	EstimatedCost      *decimal.Decimal
	ActualCost         *decimal.Decimal
	TechnicianID       *int
}

// TicketService manages repair service tickets.
//
// Status values form the intended happy path pending → in_progress →
// completed/cancelled, but no transition guard is enforced: any status may be
// set from any state. The only status side effect is completed_at, which is
// set exactly when a ticket first enters "completed" and is never cleared.
type TicketService interface {
	CreateService(ctx context.Context, customerID int, deviceType, deviceBrand, deviceModel,
		problemDescription string, estimatedCost *decimal.Decimal, technicianID *int) (*Service, error)
	UpdateService(ctx context.Context, serviceID int, upd ServiceUpdate) (*Service, error)
	// GetService returns nil (not an error) when the id does not exist.
	GetService(ctx context.Context, serviceID int) (*Service, error)
	GetServices(ctx context.Context) ([]Service, error)
	GetServicesByCustomer(ctx context.Context, customerID int) ([]Service, error)
}

type ticketService struct {
	pool *pgxpool.Pool
}

// NewTicketService constructs a TicketService backed by PostgreSQL.
func NewTicketService(pool *pgxpool.Pool) TicketService {
	return &ticketService{pool: pool}
}

const serviceColumns = `id, customer_id, device_type, device_brand, device_model,
	problem_description, diagnosis, repair_actions, status, estimated_cost,
	actual_cost, technician_id, completed_at, created_at, updated_at`

func scanService(row pgx.Row) (*Service, error) {
	var sv Service
	err := row.Scan(&sv.ID, &sv.CustomerID, &sv.DeviceType, &sv.DeviceBrand, &sv.DeviceModel,
		&sv.ProblemDescription, &sv.Diagnosis, &sv.RepairActions, &sv.Status, &sv.EstimatedCost,
		&sv.ActualCost, &sv.TechnicianID, &sv.CompletedAt, &sv.CreatedAt, &sv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

func (s *ticketService) CreateService(ctx context.Context, customerID int, deviceType, deviceBrand, deviceModel,
	problemDescription string, estimatedCost *decimal.Decimal, technicianID *int) (*Service, error) {

	var exists bool
	if err := s.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)", customerID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check customer %d: %w", customerID, err)
	}
	if !exists {
		return nil, &NotFoundError{Entity: "customer", ID: customerID}
	}

	sv, err := scanService(s.pool.QueryRow(ctx, `
		INSERT INTO services (customer_id, device_type, device_brand, device_model,
			problem_description, estimated_cost, technician_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+serviceColumns,
		customerID, deviceType, deviceBrand, deviceModel, problemDescription,
		estimatedCost, technicianID))
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return sv, nil
}

func (s *ticketService) UpdateService(ctx context.Context, serviceID int, upd ServiceUpdate) (*Service, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the row so the completed_at side effect sees a stable prior status.
	var currentStatus ServiceStatus
	err = tx.QueryRow(ctx,
		"SELECT status FROM services WHERE id = $1 FOR UPDATE", serviceID,
	).Scan(&currentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "service", ID: serviceID}
		}
		return nil, fmt.Errorf("failed to fetch service %d: %w", serviceID, err)
	}

	set := "updated_at = NOW()"
	args := []any{serviceID}

	add := func(column string, value any) {
		args = append(args, value)
		set += fmt.Sprintf(", %s = $%d", column, len(args))
	}
	if upd.DeviceType != nil {
		add("device_type", *upd.DeviceType)
	}
	if upd.DeviceBrand != nil {
		add("device_brand", *upd.DeviceBrand)
	}
	if upd.DeviceModel != nil {
		add("device_model", *upd.DeviceModel)
	}
	if upd.ProblemDescription != nil {
		add("problem_description", *upd.ProblemDescription)
	}
	if upd.Diagnosis != nil {
		add("diagnosis", *upd.Diagnosis)
	}
	if upd.RepairActions != nil {
		add("repair_actions", *upd.RepairActions)
	}
	if upd.EstimatedCost != nil {
		add("estimated_cost", *upd.EstimatedCost)
	}
	if upd.ActualCost != nil {
		add("actual_cost", *upd.ActualCost)
	}
	if upd.TechnicianID != nil {
		add("technician_id", *upd.TechnicianID)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
		// Entering "completed" stamps completed_at; nothing ever clears it,
		// so moving back to in_progress leaves the old timestamp in place.
		if *upd.Status == ServiceCompleted && currentStatus != ServiceCompleted {
			set += ", completed_at = NOW()"
		}
	}

	sv, err := scanService(tx.QueryRow(ctx,
		"UPDATE services SET "+set+" WHERE id = $1 RETURNING "+serviceColumns, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update service %d: %w", serviceID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit service update: %w", err)
	}
	return sv, nil
}

func (s *ticketService) GetService(ctx context.Context, serviceID int) (*Service, error) {
	sv, err := scanService(s.pool.QueryRow(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE id = $1", serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %d: %w", serviceID, err)
	}
	return sv, nil
}

func (s *ticketService) GetServices(ctx context.Context) ([]Service, error) {
	return s.queryServices(ctx,
		"SELECT "+serviceColumns+" FROM services ORDER BY id DESC")
}

func (s *ticketService) GetServicesByCustomer(ctx context.Context, customerID int) ([]Service, error) {
	return s.queryServices(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE customer_id = $1 ORDER BY id DESC", customerID)
}

func (s *ticketService) queryServices(ctx context.Context, query string, args ...any) ([]Service, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []Service
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *sv)
	}
	return services, rows.Err()
}
