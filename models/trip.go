package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripStatusPending   TripStatus = "PENDING"
	TripStatusCompleted TripStatus = "COMPLETED"
)

type Trip struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReservationID string    `gorm:"uniqueIndex;not null" json:"reservationId"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	TotalValue      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalValue"`
	ReturnDate      time.Time       `gorm:"not null" json:"returnDate"`
	Status          TripStatus      `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CashbackPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"cashbackPercent"`

	CreatedAt time.Time `json:"createdAt"`
}

func (t *Trip) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
