package services

import (
	"context"
	"errors"

	"cashback-backend/models"
	"cashback-backend/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	customerListLimit        = 50
	defaultCustomerHistory   = 10
	maxCustomerHistoryLength = 100
)

// CustomerService serves the read side of the dashboard.
type CustomerService struct {
	repo repositories.Repository
	log  logrus.FieldLogger
}

func NewCustomerService(repo repositories.Repository, log logrus.FieldLogger) *CustomerService {
	return &CustomerService{repo: repo, log: log.WithField("component", "customers")}
}

// List returns the top customers by points, optionally filtered by a
// name, CPF or email fragment.
func (s *CustomerService) List(ctx context.Context, search string) ([]models.CustomerSummary, error) {
	customers, err := s.repo.ListCustomers(ctx, search, customerListLimit)
	if err != nil {
		return nil, s.storageFailure("list customers", err)
	}
	if customers == nil {
		customers = []models.CustomerSummary{}
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.FindCustomerByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Resource: "customer"}
	}
	if err != nil {
		return nil, s.storageFailure("find customer", err)
	}
	return customer, nil
}

// History returns the latest ledger entries of one customer.
func (s *CustomerService) History(ctx context.Context, id uuid.UUID, limit int) ([]models.Transaction, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = defaultCustomerHistory
	}
	if limit > maxCustomerHistoryLength {
		limit = maxCustomerHistoryLength
	}

	transactions, _, err := s.repo.ListTransactions(ctx, models.TransactionFilter{
		CustomerID: &id,
		Page:       1,
		Limit:      limit,
	})
	if err != nil {
		return nil, s.storageFailure("list transactions", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

func (s *CustomerService) Options(ctx context.Context) ([]models.CustomerOption, error) {
	options, err := s.repo.ListCustomerOptions(ctx)
	if err != nil {
		return nil, s.storageFailure("list customer options", err)
	}
	if options == nil {
		options = []models.CustomerOption{}
	}
	return options, nil
}

func (s *CustomerService) Stats(ctx context.Context) (models.DashboardStats, error) {
	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return stats, s.storageFailure("dashboard stats", err)
	}
	return stats, nil
}

func (s *CustomerService) storageFailure(op string, err error) error {
	s.log.WithError(err).Error(op + " failed")
	return &StorageError{Op: op, Err: err}
}
