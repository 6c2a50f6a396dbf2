package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cashback-backend/models"
	"cashback-backend/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

type memoryData struct {
	customers     map[uuid.UUID]models.Customer
	trips         map[string]models.Trip
	transactions  []models.Transaction
	notifications []models.NotificationLog
	clock         time.Time
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		customers:     make(map[uuid.UUID]models.Customer, len(d.customers)),
		trips:         make(map[string]models.Trip, len(d.trips)),
		transactions:  append([]models.Transaction(nil), d.transactions...),
		notifications: append([]models.NotificationLog(nil), d.notifications...),
		clock:         d.clock,
	}
	for k, v := range d.customers {
		c.customers[k] = v
	}
	for k, v := range d.trips {
		c.trips[k] = v
	}
	return c
}

func (d *memoryData) tick() time.Time {
	d.clock = d.clock.Add(time.Second)
	return d.clock
}

// memoryRepository is a transactional in-memory repositories.Repository.
// Setting fail[method] makes that method return the error. once[method] does
// the same for the next call only.
type memoryRepository struct {
	data *memoryData
	fail map[string]error
	once map[string]error
}

var _ repositories.Repository = (*memoryRepository)(nil)

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		data: &memoryData{
			customers: make(map[uuid.UUID]models.Customer),
			trips:     make(map[string]models.Trip),
			clock:     time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC),
		},
		fail: make(map[string]error),
		once: make(map[string]error),
	}
}

func (r *memoryRepository) failure(method string) error {
	if err, ok := r.once[method]; ok {
		delete(r.once, method)
		return err
	}
	return r.fail[method]
}

func (r *memoryRepository) Transaction(ctx context.Context, fn func(tx repositories.Repository) error) error {
	if err := r.failure("Transaction"); err != nil {
		return err
	}
	tx := &memoryRepository{data: r.data.clone(), fail: r.fail, once: r.once}
	if err := fn(tx); err != nil {
		return err
	}
	*r.data = *tx.data
	return nil
}

func (r *memoryRepository) FindCustomerByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	if err := r.failure("FindCustomerByCPF"); err != nil {
		return nil, err
	}
	for _, c := range r.data.customers {
		if c.CPF == cpf {
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if err := r.failure("FindCustomerByID"); err != nil {
		return nil, err
	}
	c, ok := r.data.customers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := r.failure("CreateCustomer"); err != nil {
		return err
	}
	for _, c := range r.data.customers {
		if c.CPF == customer.CPF {
			return fmt.Errorf("%w: cpf %s", repositories.ErrDuplicate, customer.CPF)
		}
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = r.data.tick()
	customer.UpdatedAt = customer.CreatedAt
	r.data.customers[customer.ID] = *customer
	return nil
}

func (r *memoryRepository) UpdateCustomerContact(ctx context.Context, customer *models.Customer) error {
	if err := r.failure("UpdateCustomerContact"); err != nil {
		return err
	}
	c, ok := r.data.customers[customer.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	c.Name = customer.Name
	c.Email = customer.Email
	c.Phone = customer.Phone
	c.UpdatedAt = r.data.tick()
	r.data.customers[c.ID] = c
	return nil
}

func (r *memoryRepository) AddCustomerPoints(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if err := r.failure("AddCustomerPoints"); err != nil {
		return 0, err
	}
	c, ok := r.data.customers[id]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	c.TotalPoints += delta
	r.data.customers[id] = c
	return c.TotalPoints, nil
}

func (r *memoryRepository) ListCustomers(ctx context.Context, search string, limit int) ([]models.CustomerSummary, error) {
	if err := r.failure("ListCustomers"); err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))

	var out []models.CustomerSummary
	for _, c := range r.data.customers {
		if search != "" {
			email := ""
			if c.Email != nil {
				email = *c.Email
			}
			if !strings.Contains(strings.ToLower(c.Name), search) &&
				!strings.Contains(c.CPF, search) &&
				!strings.Contains(strings.ToLower(email), search) {
				continue
			}
		}
		summary := models.CustomerSummary{Customer: c}
		for _, t := range r.data.trips {
			if t.CustomerID == c.ID {
				summary.TotalRevenue += t.TotalValue.InexactFloat64()
			}
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalPoints > out[j].TotalPoints })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryRepository) ListCustomerOptions(ctx context.Context) ([]models.CustomerOption, error) {
	if err := r.failure("ListCustomerOptions"); err != nil {
		return nil, err
	}
	var out []models.CustomerOption
	for _, c := range r.data.customers {
		out = append(out, models.CustomerOption{ID: c.ID, Name: c.Name, CPF: c.CPF})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryRepository) FindTripByReservationID(ctx context.Context, reservationID string) (*models.Trip, error) {
	if err := r.failure("FindTripByReservationID"); err != nil {
		return nil, err
	}
	t, ok := r.data.trips[reservationID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *memoryRepository) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if err := r.failure("CreateTrip"); err != nil {
		return err
	}
	if _, ok := r.data.trips[trip.ReservationID]; ok {
		return fmt.Errorf("%w: reservation %s", repositories.ErrDuplicate, trip.ReservationID)
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.CreatedAt = r.data.tick()
	r.data.trips[trip.ReservationID] = *trip
	return nil
}

func (r *memoryRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if err := r.failure("CreateTransaction"); err != nil {
		return err
	}
	if transaction.TripID != nil {
		for _, t := range r.data.transactions {
			if t.TripID != nil && *t.TripID == *transaction.TripID {
				return fmt.Errorf("%w: trip %s", repositories.ErrDuplicate, *transaction.TripID)
			}
		}
	}
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	transaction.CreatedAt = r.data.tick()
	r.data.transactions = append(r.data.transactions, *transaction)
	return nil
}

func (r *memoryRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, int64, error) {
	if err := r.failure("ListTransactions"); err != nil {
		return nil, 0, err
	}
	var matched []models.Transaction
	for _, t := range r.data.transactions {
		switch {
		case filter.CustomerID != nil && t.CustomerID != *filter.CustomerID:
		case filter.Type != "" && t.Type != filter.Type:
		case filter.StartDate != nil && t.CreatedAt.Before(*filter.StartDate):
		case filter.EndDate != nil && t.CreatedAt.After(*filter.EndDate):
		default:
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memoryRepository) ListUnnotifiedCredits(ctx context.Context, limit int) ([]models.Transaction, error) {
	if err := r.failure("ListUnnotifiedCredits"); err != nil {
		return nil, err
	}
	var out []models.Transaction
	for _, t := range r.data.transactions {
		if t.Type != models.TransactionTypeCredit || t.NotifiedAt != nil {
			continue
		}
		c := r.data.customers[t.CustomerID]
		if c.Phone == nil || *c.Phone == "" {
			continue
		}
		t.Customer = &c
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryRepository) MarkTransactionNotified(ctx context.Context, id uuid.UUID) error {
	if err := r.failure("MarkTransactionNotified"); err != nil {
		return err
	}
	for i := range r.data.transactions {
		if r.data.transactions[i].ID == id {
			now := r.data.tick()
			r.data.transactions[i].NotifiedAt = &now
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *memoryRepository) CreateNotificationLog(ctx context.Context, log *models.NotificationLog) error {
	if err := r.failure("CreateNotificationLog"); err != nil {
		return err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	r.data.notifications = append(r.data.notifications, *log)
	return nil
}

func (r *memoryRepository) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := r.failure("DashboardStats"); err != nil {
		return stats, err
	}
	for _, c := range r.data.customers {
		stats.TotalPoints += int64(c.TotalPoints)
		if c.TotalPoints > 0 {
			stats.ActiveCustomers++
		}
	}
	for _, t := range r.data.trips {
		if t.Status == models.TripStatusCompleted {
			stats.CompletedTrips++
		}
		stats.TotalRevenue += t.TotalValue.InexactFloat64()
	}
	stats.TotalRevenue1Percent = stats.TotalRevenue * 0.01
	return stats, nil
}

// customerByCPF is a test shortcut that panics on a missing customer.
func (r *memoryRepository) customerByCPF(cpf string) models.Customer {
	for _, c := range r.data.customers {
		if c.CPF == cpf {
			return c
		}
	}
	panic("no customer with cpf " + cpf)
}

// ledgerBalance sums the signed ledger entries of a customer.
func (r *memoryRepository) ledgerBalance(id uuid.UUID) int {
	sum := 0
	for _, t := range r.data.transactions {
		if t.CustomerID == id {
			sum += t.Signed()
		}
	}
	return sum
}
