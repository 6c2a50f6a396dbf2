package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cashback-backend/models"
	"cashback-backend/repositories"

	"github.com/sirupsen/logrus"
)

// ImportService reconciles canonical batches against the store: customers are
// upserted by CPF, trips are posted once per reservation id.
type ImportService struct {
	repo       repositories.Repository
	ledger     *LedgerPoster
	translator *Translator
	log        logrus.FieldLogger
}

func NewImportService(repo repositories.Repository, translator *Translator, log logrus.FieldLogger) *ImportService {
	return &ImportService{
		repo:       repo,
		ledger:     NewLedgerPoster(repo),
		translator: translator,
		log:        log.WithField("component", "import"),
	}
}

// SheetImport is the outcome of a spreadsheet import.
type SheetImport struct {
	Format SheetFormat
	Stats  models.ImportStats
	Report *ProviderReportStats
}

// Import validates data and applies it. Customers go first so that trips in
// the same batch can resolve their owner. Trips whose customer is unknown or
// whose reservation id already exists are skipped.
func (s *ImportService) Import(ctx context.Context, data models.ImportData) (models.ImportStats, error) {
	var stats models.ImportStats

	if err := validateStruct(data); err != nil {
		return stats, err
	}

	for _, c := range data.Customers {
		created, err := s.upsertCustomer(ctx, c)
		if err != nil {
			return stats, err
		}
		if created {
			stats.CustomersCreated++
		} else {
			stats.CustomersUpdated++
		}
	}

	for _, t := range data.Trips {
		posting, posted, err := s.postTrip(ctx, t)
		if err != nil {
			return stats, err
		}
		if !posted {
			continue
		}
		stats.TripsCreated++
		if posting.Transaction != nil {
			stats.TransactionsCreated++
			stats.TotalPointsAdded += posting.Points
		}
	}

	s.log.WithFields(logrus.Fields{
		"customers_created":    stats.CustomersCreated,
		"customers_updated":    stats.CustomersUpdated,
		"trips_created":        stats.TripsCreated,
		"transactions_created": stats.TransactionsCreated,
		"points_added":         stats.TotalPointsAdded,
	}).Info("import finished")

	return stats, nil
}

// ImportSheet reads the first sheet of an xlsx workbook, translates it
// according to its detected layout and imports the result.
func (s *ImportService) ImportSheet(ctx context.Context, r io.Reader) (SheetImport, error) {
	headers, rows, err := ReadSheet(r)
	if err != nil {
		return SheetImport{}, err
	}

	translation := s.translator.Translate(headers, rows)
	result := SheetImport{Format: translation.Format, Report: translation.Stats}

	s.log.WithFields(logrus.Fields{
		"format":    translation.Format.String(),
		"rows":      len(rows),
		"customers": len(translation.Data.Customers),
		"trips":     len(translation.Data.Trips),
	}).Debug("sheet translated")

	if len(translation.Data.Customers) == 0 {
		return result, &ValidationError{
			Message: "no valid customer found",
			Issues:  []string{"check that the CPF column holds 11 digits"},
		}
	}

	result.Stats, err = s.Import(ctx, translation.Data)
	return result, err
}

func (s *ImportService) upsertCustomer(ctx context.Context, in models.CustomerImport) (created bool, err error) {
	existing, err := s.repo.FindCustomerByCPF(ctx, in.CPF)
	switch {
	case err == nil:
		return false, s.updateCustomer(ctx, existing, in)
	case !errors.Is(err, repositories.ErrNotFound):
		return false, s.storageFailure("find customer", err, logrus.Fields{"cpf": in.CPF})
	}

	customer := &models.Customer{
		CPF:   in.CPF,
		Name:  in.Name,
		Email: optional(in.Email),
		Phone: optional(in.Phone),
	}
	err = s.repo.CreateCustomer(ctx, customer)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Created by a concurrent import since the lookup.
		existing, err = s.repo.FindCustomerByCPF(ctx, in.CPF)
		if err != nil {
			return false, s.storageFailure("find customer", err, logrus.Fields{"cpf": in.CPF})
		}
		return false, s.updateCustomer(ctx, existing, in)
	}
	if err != nil {
		return false, s.storageFailure("create customer", err, logrus.Fields{"cpf": in.CPF})
	}
	return true, nil
}

func (s *ImportService) updateCustomer(ctx context.Context, customer *models.Customer, in models.CustomerImport) error {
	customer.Name = in.Name
	customer.Email = optional(in.Email)
	customer.Phone = optional(in.Phone)
	if err := s.repo.UpdateCustomerContact(ctx, customer); err != nil {
		return s.storageFailure("update customer", err, logrus.Fields{"cpf": in.CPF})
	}
	return nil
}

func (s *ImportService) postTrip(ctx context.Context, in models.TripImport) (Posting, bool, error) {
	fields := logrus.Fields{"reservation_id": in.ReservationID, "cpf": in.CustomerCPF}

	customer, err := s.repo.FindCustomerByCPF(ctx, in.CustomerCPF)
	if errors.Is(err, repositories.ErrNotFound) {
		s.log.WithFields(fields).Debug("trip skipped: unknown customer")
		return Posting{}, false, nil
	}
	if err != nil {
		return Posting{}, false, s.storageFailure("find customer", err, fields)
	}

	_, err = s.repo.FindTripByReservationID(ctx, in.ReservationID)
	if err == nil {
		s.log.WithFields(fields).Debug("trip skipped: already imported")
		return Posting{}, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return Posting{}, false, s.storageFailure("find trip", err, fields)
	}

	posting, err := s.ledger.PostTrip(ctx, in, customer)
	if errors.Is(err, repositories.ErrDuplicate) {
		s.log.WithFields(fields).Debug("trip skipped: posted concurrently")
		return Posting{}, false, nil
	}
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return Posting{}, false, err
		}
		return Posting{}, false, s.storageFailure("post trip", err, fields)
	}
	return posting, true, nil
}

func (s *ImportService) storageFailure(op string, err error, fields logrus.Fields) error {
	s.log.WithFields(fields).WithError(err).Error(op + " failed")
	return &StorageError{Op: op, Err: err}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ImportMessage renders the operator message of a successful import.
func ImportMessage(result SheetImport) string {
	msg := "Import completed successfully"
	if result.Report != nil {
		msg += fmt.Sprintf(" (%s: %d rows filtered, %d without email)",
			result.Format, result.Report.Filtered, result.Report.NoEmail)
	}
	return msg
}
