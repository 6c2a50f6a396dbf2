package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CPF string    `gorm:"type:varchar(11);uniqueIndex;not null" json:"cpf"`

	Name        string  `gorm:"not null" json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	TotalPoints int     `gorm:"not null;default:0" json:"totalPoints"`

	Trips        []Trip        `gorm:"foreignKey:CustomerID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// CustomerSummary is a customer row of the dashboard table.
type CustomerSummary struct {
	Customer
	TotalRevenue float64 `json:"totalRevenue"`
}

// CustomerOption feeds customer pickers.
type CustomerOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	CPF  string    `json:"cpf"`
}
