package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cashback-backend/models"
	"cashback-backend/repositories"
	"cashback-backend/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultStatementLimit = 20
	maxStatementLimit     = 100
)

// ManualTransaction is an operator-entered credit or debit. CustomerID takes
// either the customer UUID or its CPF.
type ManualTransaction struct {
	CustomerID  string                 `json:"customerId" validate:"required"`
	Type        models.TransactionType `json:"type" validate:"oneof=CREDIT DEBIT"`
	Points      int                    `json:"points" validate:"gt=0"`
	Description string                 `json:"description" validate:"required"`
}

// StatementQuery carries the raw statement filters as received over HTTP.
type StatementQuery struct {
	CustomerID string
	Type       string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type TransactionService struct {
	repo repositories.Repository
	log  logrus.FieldLogger
}

func NewTransactionService(repo repositories.Repository, log logrus.FieldLogger) *TransactionService {
	return &TransactionService{repo: repo, log: log.WithField("component", "transactions")}
}

// PostManual appends a manual entry and applies it to the customer balance,
// both in one transaction. Debits larger than the balance are refused.
func (s *TransactionService) PostManual(ctx context.Context, in ManualTransaction) (int, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(in); err != nil {
		return 0, err
	}

	var newBalance int
	err := s.repo.Transaction(ctx, func(tx repositories.Repository) error {
		customer, err := s.resolveCustomer(ctx, tx, in.CustomerID)
		if err != nil {
			return err
		}

		entry := &models.Transaction{
			Type:        in.Type,
			Points:      in.Points,
			Description: in.Description,
			CustomerID:  customer.ID,
		}
		if entry.Type == models.TransactionTypeDebit && customer.TotalPoints < entry.Points {
			return &BusinessRuleError{
				Message: fmt.Sprintf("insufficient balance: current balance is %d points", customer.TotalPoints),
			}
		}

		if err := tx.CreateTransaction(ctx, entry); err != nil {
			return &StorageError{Op: "create transaction", Err: err}
		}
		newBalance, err = tx.AddCustomerPoints(ctx, customer.ID, entry.Signed())
		if err != nil {
			return &StorageError{Op: "update balance", Err: err}
		}
		return nil
	})
	if err != nil {
		var storageErr *StorageError
		if errors.As(err, &storageErr) {
			s.log.WithError(err).WithField("customer", in.CustomerID).Error("manual transaction failed")
		}
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"customer":    in.CustomerID,
		"type":        in.Type,
		"points":      in.Points,
		"new_balance": newBalance,
	}).Info("manual transaction posted")
	return newBalance, nil
}

// resolveCustomer loads and locks the customer named by ref.
func (s *TransactionService) resolveCustomer(ctx context.Context, tx repositories.Repository, ref string) (*models.Customer, error) {
	id, err := uuid.Parse(strings.TrimSpace(ref))
	if err != nil {
		cpf, ok := utils.NormalizeCPF(ref)
		if !ok {
			return nil, &NotFoundError{Resource: "customer"}
		}
		byCPF, err := tx.FindCustomerByCPF(ctx, cpf)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer"}
		}
		if err != nil {
			return nil, &StorageError{Op: "find customer", Err: err}
		}
		id = byCPF.ID
	}

	customer, err := tx.FindCustomerByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Resource: "customer"}
	}
	if err != nil {
		return nil, &StorageError{Op: "find customer", Err: err}
	}
	return customer, nil
}

// Statement lists ledger entries, newest first, one page at a time.
func (s *TransactionService) Statement(ctx context.Context, q StatementQuery) (models.TransactionPage, error) {
	filter, err := statementFilter(q)
	if err != nil {
		return models.TransactionPage{}, err
	}

	transactions, total, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		s.log.WithError(err).Error("list transactions failed")
		return models.TransactionPage{}, &StorageError{Op: "list transactions", Err: err}
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return models.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         filter.Page,
		TotalPages:   int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}, nil
}

func statementFilter(q StatementQuery) (models.TransactionFilter, error) {
	filter := models.TransactionFilter{Page: q.Page, Limit: q.Limit}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultStatementLimit
	}
	if filter.Limit > maxStatementLimit {
		filter.Limit = maxStatementLimit
	}

	var issues []string

	if q.CustomerID != "" {
		id, err := uuid.Parse(q.CustomerID)
		if err != nil {
			issues = append(issues, "customerId: invalid id")
		} else {
			filter.CustomerID = &id
		}
	}

	switch t := models.TransactionType(strings.ToUpper(q.Type)); t {
	case "":
	case models.TransactionTypeCredit, models.TransactionTypeDebit:
		filter.Type = t
	default:
		issues = append(issues, "type: must be one of CREDIT, DEBIT")
	}

	if q.StartDate != "" {
		start, err := parseFilterDate(q.StartDate)
		if err != nil {
			issues = append(issues, "startDate: invalid date")
		} else {
			filter.StartDate = &start
		}
	}
	if q.EndDate != "" {
		end, err := parseFilterDate(q.EndDate)
		if err != nil {
			issues = append(issues, "endDate: invalid date")
		} else {
			if len(q.EndDate) == len(time.DateOnly) {
				end = utils.EndOfDay(end)
			}
			filter.EndDate = &end
		}
	}

	if len(issues) > 0 {
		return filter, &ValidationError{Message: "invalid filters", Issues: issues}
	}
	return filter, nil
}

func parseFilterDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return utils.BeginningOfDay(t), nil
	}
	return time.Parse(time.RFC3339, raw)
}
