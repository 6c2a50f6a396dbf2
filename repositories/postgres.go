package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cashback-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresRepository implements Repository on gorm.
type PostgresRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx, inTx: true})
	})
}

func (r *PostgresRepository) FindCustomerByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *PostgresRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	query := r.db.WithContext(ctx)
	if r.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var customer models.Customer
	if err := query.Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *PostgresRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return translate(r.db.WithContext(ctx).Create(customer).Error)
}

func (r *PostgresRepository) UpdateCustomerContact(ctx context.Context, customer *models.Customer) error {
	result := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":       customer.Name,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AddCustomerPoints(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var customer models.Customer
	result := r.db.WithContext(ctx).Model(&customer).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "total_points"}}}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_points": gorm.Expr("total_points + ?", delta),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return customer.TotalPoints, nil
}

type customerRow struct {
	ID           uuid.UUID
	CPF          string
	Name         string
	Email        *string
	Phone        *string
	TotalPoints  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	TotalRevenue float64
}

func (r *PostgresRepository) ListCustomers(ctx context.Context, search string, limit int) ([]models.CustomerSummary, error) {
	query := r.db.WithContext(ctx).Table("customers").
		Select("customers.id, customers.cpf, customers.name, customers.email, customers.phone, " +
			"customers.total_points, customers.created_at, customers.updated_at, " +
			"COALESCE(SUM(trips.total_value), 0) AS total_revenue").
		Joins("LEFT JOIN trips ON trips.customer_id = customers.id").
		Group("customers.id").
		Order("customers.total_points DESC").
		Limit(limit)

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("customers.name ILIKE ? OR customers.cpf LIKE ? OR customers.email ILIKE ?", like, like, like)
	}

	rows, err := query.Rows()
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var customers []models.CustomerSummary
	for rows.Next() {
		var row customerRow
		if err := r.db.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		customers = append(customers, models.CustomerSummary{
			Customer: models.Customer{
				ID:          row.ID,
				CPF:         row.CPF,
				Name:        row.Name,
				Email:       row.Email,
				Phone:       row.Phone,
				TotalPoints: row.TotalPoints,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			TotalRevenue: row.TotalRevenue,
		})
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) ListCustomerOptions(ctx context.Context) ([]models.CustomerOption, error) {
	var options []models.CustomerOption
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select("id, name, cpf").
		Order("name ASC").
		Scan(&options).Error
	return options, translate(err)
}

func (r *PostgresRepository) FindTripByReservationID(ctx context.Context, reservationID string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&trip).Error; err != nil {
		return nil, translate(err)
	}
	return &trip, nil
}

func (r *PostgresRepository) CreateTrip(ctx context.Context, trip *models.Trip) error {
	return translate(r.db.WithContext(ctx).Create(trip).Error)
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error)
}

func (r *PostgresRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var transactions []models.Transaction
	err := query.
		Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "cpf") }).
		Preload("Trip", func(db *gorm.DB) *gorm.DB { return db.Select("id", "reservation_id") }).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return transactions, total, nil
}

func (r *PostgresRepository) ListUnnotifiedCredits(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Joins("Customer").
		Preload("Trip").
		Where("transactions.type = ? AND transactions.notified_at IS NULL", models.TransactionTypeCredit).
		Where(`"Customer".phone IS NOT NULL AND "Customer".phone <> ''`).
		Order("transactions.created_at ASC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, translate(err)
}

func (r *PostgresRepository) MarkTransactionNotified(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).
		UpdateColumn("notified_at", time.Now()).Error)
}

func (r *PostgresRepository) CreateNotificationLog(ctx context.Context, log *models.NotificationLog) error {
	return translate(r.db.WithContext(ctx).Create(log).Error)
}

func (r *PostgresRepository) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Customer{}).
		Select("COALESCE(SUM(total_points), 0)").
		Scan(&stats.TotalPoints).Error; err != nil {
		return stats, fmt.Errorf("sum points: %w", err)
	}
	if err := db.Model(&models.Customer{}).
		Where("total_points > 0").
		Count(&stats.ActiveCustomers).Error; err != nil {
		return stats, fmt.Errorf("count active customers: %w", err)
	}
	if err := db.Model(&models.Trip{}).
		Where("status = ?", models.TripStatusCompleted).
		Count(&stats.CompletedTrips).Error; err != nil {
		return stats, fmt.Errorf("count completed trips: %w", err)
	}
	if err := db.Model(&models.Trip{}).
		Select("COALESCE(SUM(total_value), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return stats, fmt.Errorf("sum revenue: %w", err)
	}

	stats.TotalRevenue1Percent = stats.TotalRevenue * 0.01
	return stats, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
