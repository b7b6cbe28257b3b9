package app

import (
	"context"
	"testing"

	"repairdesk/internal/core"
)

// Interface-embedding stubs: only the methods a test exercises are
// implemented, anything else panics on a nil embedded interface.
type stubTicketService struct {
	core.TicketService
	services []core.Service
}

func (s stubTicketService) GetServicesByCustomer(_ context.Context, _ int) ([]core.Service, error) {
	return s.services, nil
}

type stubTransactionService struct {
	core.TransactionService
	transactions []core.Transaction
}

func (s stubTransactionService) GetTransactionsByCustomer(_ context.Context, _ int) ([]core.Transaction, error) {
	return s.transactions, nil
}

func TestGetCustomerHistory_UnknownCustomerYieldsEmptyHistory(t *testing.T) {
	svc := NewApplicationService(nil, nil,
		stubTicketService{}, stubTransactionService{}, nil, nil)

	history, err := svc.GetCustomerHistory(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetCustomerHistory: %v", err)
	}
	if history == nil {
		t.Fatal("expected a history, got nil")
	}
	if history.Services == nil || len(history.Services) != 0 {
		t.Errorf("services = %v, want []", history.Services)
	}
	if history.Transactions == nil || len(history.Transactions) != 0 {
		t.Errorf("transactions = %v, want []", history.Transactions)
	}
}

func TestGetCustomerHistory_BundlesServicesAndTransactions(t *testing.T) {
	svc := NewApplicationService(nil, nil,
		stubTicketService{services: []core.Service{{ID: 7, CustomerID: 1}}},
		stubTransactionService{transactions: []core.Transaction{{ID: 3, CustomerID: 1}, {ID: 4, CustomerID: 1}}},
		nil, nil)

	history, err := svc.GetCustomerHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetCustomerHistory: %v", err)
	}
	if len(history.Services) != 1 || history.Services[0].ID != 7 {
		t.Errorf("services = %v, want one ticket with id 7", history.Services)
	}
	if len(history.Transactions) != 2 {
		t.Errorf("got %d transactions, want 2", len(history.Transactions))
	}
}
