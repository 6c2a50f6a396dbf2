package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cashback-backend/models"
	"cashback-backend/repositories"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculatePoints returns floor(totalValue * cashbackPercent / 100). Fractional
// points are dropped.
func CalculatePoints(totalValue, cashbackPercent decimal.Decimal) int {
	return int(totalValue.Mul(cashbackPercent).Div(hundred).Floor().IntPart())
}

// CashbackDescription is the ledger text of a trip credit.
func CashbackDescription(reservationID string) string {
	return "Cashback da reserva " + reservationID
}

// Posting is what the ledger wrote for one trip.
type Posting struct {
	Trip        *models.Trip
	Transaction *models.Transaction
	Points      int
}

// LedgerPoster records a trip and its cashback credit as one atomic unit.
type LedgerPoster struct {
	repo repositories.Repository
}

func NewLedgerPoster(repo repositories.Repository) *LedgerPoster {
	return &LedgerPoster{repo: repo}
}

// PostTrip inserts the trip and, for a completed trip worth at least one
// point, a CREDIT entry plus the matching balance increment. It returns
// repositories.ErrDuplicate, with nothing written, when the reservation id is
// already taken.
func (p *LedgerPoster) PostTrip(ctx context.Context, in models.TripImport, customer *models.Customer) (Posting, error) {
	returnDate, err := time.Parse(time.RFC3339, in.ReturnDate)
	if err != nil {
		return Posting{}, &ValidationError{
			Message: "invalid data",
			Issues:  []string{"returnDate: invalid datetime"},
		}
	}
	if in.CashbackPercent == nil {
		return Posting{}, &ValidationError{
			Message: "invalid data",
			Issues:  []string{"cashbackPercent: is required"},
		}
	}
	percent := *in.CashbackPercent

	trip := &models.Trip{
		ReservationID:   in.ReservationID,
		CustomerID:      customer.ID,
		TotalValue:      in.TotalValue,
		ReturnDate:      returnDate,
		Status:          in.Status,
		CashbackPercent: percent,
	}
	points := CalculatePoints(in.TotalValue, percent)
	posting := Posting{Trip: trip}

	err = p.repo.Transaction(ctx, func(tx repositories.Repository) error {
		if err := tx.CreateTrip(ctx, trip); err != nil {
			return err
		}

		if trip.Status != models.TripStatusCompleted || points <= 0 {
			return nil
		}

		tripID := trip.ID
		entry := &models.Transaction{
			Type:        models.TransactionTypeCredit,
			Points:      points,
			Description: CashbackDescription(trip.ReservationID),
			CustomerID:  customer.ID,
			TripID:      &tripID,
		}
		if err := tx.CreateTransaction(ctx, entry); err != nil {
			return fmt.Errorf("create credit: %w", err)
		}
		if _, err := tx.AddCustomerPoints(ctx, customer.ID, points); err != nil {
			return fmt.Errorf("increment balance: %w", err)
		}

		posting.Transaction = entry
		posting.Points = points
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return Posting{}, repositories.ErrDuplicate
		}
		return Posting{}, err
	}
	return posting, nil
}
