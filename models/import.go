package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ImportData is the canonical batch accepted by the import service, either
// decoded from the JSON payload or produced by a spreadsheet translator.
type ImportData struct {
	Customers []CustomerImport `json:"customers" validate:"dive"`
	Trips     []TripImport     `json:"trips" validate:"dive"`
}

type CustomerImport struct {
	Name  string `json:"name" validate:"required"`
	CPF   string `json:"cpf" validate:"cpf"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

type TripImport struct {
	ReservationID   string           `json:"reservationId" validate:"required"`
	CustomerCPF     string           `json:"customerCpf" validate:"cpf"`
	TotalValue      decimal.Decimal  `json:"totalValue" validate:"gt=0"`
	ReturnDate      string           `json:"returnDate" validate:"required,utcdatetime"`
	Status          TripStatus       `json:"status" validate:"oneof=PENDING COMPLETED"`
	CashbackPercent *decimal.Decimal `json:"cashbackPercent" validate:"required,min=0,max=100"`
}

// UnmarshalJSON decodes a trip and refuses amounts sent as JSON strings.
func (t *TripImport) UnmarshalJSON(b []byte) error {
	var amounts struct {
		TotalValue      json.RawMessage `json:"totalValue"`
		CashbackPercent json.RawMessage `json:"cashbackPercent"`
	}
	if err := json.Unmarshal(b, &amounts); err != nil {
		return err
	}
	if isJSONString(amounts.TotalValue) {
		return fmt.Errorf("totalValue must be a number, got %s", amounts.TotalValue)
	}
	if isJSONString(amounts.CashbackPercent) {
		return fmt.Errorf("cashbackPercent must be a number, got %s", amounts.CashbackPercent)
	}

	type trip TripImport
	return json.Unmarshal(b, (*trip)(t))
}

func isJSONString(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) > 0 && bytes.TrimSpace(raw)[0] == '"'
}

type ImportStats struct {
	CustomersCreated    int `json:"customersCreated"`
	CustomersUpdated    int `json:"customersUpdated"`
	TripsCreated        int `json:"tripsCreated"`
	TransactionsCreated int `json:"transactionsCreated"`
	TotalPointsAdded    int `json:"totalPointsAdded"`
}

// ImportResult is returned by both the JSON and the spreadsheet import paths.
type ImportResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Stats   *ImportStats `json:"stats,omitempty"`
	Errors  []string     `json:"errors,omitempty"`
}

// TransactionResult is returned by the manual transaction endpoint.
type TransactionResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	NewBalance *int     `json:"newBalance,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}
