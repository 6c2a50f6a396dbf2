package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

// Transaction is an append-only ledger entry. TripID is nil for manual entries.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Points      int             `gorm:"not null" json:"points"`
	Description string          `gorm:"type:text" json:"description"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"customerId"`
	TripID      *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"tripId"`
	NotifiedAt  *time.Time      `gorm:"index" json:"-"`
	CreatedAt   time.Time       `gorm:"index" json:"createdAt"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Trip     *Trip     `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// Signed returns the balance delta this entry applies.
func (t Transaction) Signed() int {
	if t.Type == TransactionTypeDebit {
		return -t.Points
	}
	return t.Points
}

// TransactionFilter narrows the statement listing.
type TransactionFilter struct {
	CustomerID *uuid.UUID
	Type       TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}
