package repositories

import (
	"context"
	"errors"

	"cashback-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique key.
	ErrDuplicate = errors.New("duplicate record")
)

// Repository is the storage capability the services depend on.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_repositories -source=repository.go Repository
type Repository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction. Any error returned by fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	FindCustomerByCPF(ctx context.Context, cpf string) (*models.Customer, error)
	// FindCustomerByID locks the row when called inside Transaction.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomerContact(ctx context.Context, customer *models.Customer) error
	// AddCustomerPoints applies delta to the stored balance and returns the new balance.
	AddCustomerPoints(ctx context.Context, id uuid.UUID, delta int) (int, error)
	ListCustomers(ctx context.Context, search string, limit int) ([]models.CustomerSummary, error)
	ListCustomerOptions(ctx context.Context) ([]models.CustomerOption, error)

	FindTripByReservationID(ctx context.Context, reservationID string) (*models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip) error

	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, int64, error)
	ListUnnotifiedCredits(ctx context.Context, limit int) ([]models.Transaction, error)
	MarkTransactionNotified(ctx context.Context, id uuid.UUID) error
	CreateNotificationLog(ctx context.Context, log *models.NotificationLog) error

	DashboardStats(ctx context.Context) (models.DashboardStats, error)
}
