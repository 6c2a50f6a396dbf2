package services

import (
	"strconv"
	"strings"
	"time"

	"cashback-backend/models"
	"cashback-backend/utils"

	"github.com/shopspring/decimal"
)

// Row is one spreadsheet line keyed by its header cell.
type Row map[string]string

// Get returns the first non-empty value among keys.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// DateDecoder turns a raw date cell into a timestamp.
type DateDecoder func(raw string) time.Time

// SheetDateDecoder decodes serial numbers and date strings, falling back to
// now() for blank or unreadable cells.
func SheetDateDecoder(now func() time.Time) DateDecoder {
	return func(raw string) time.Time {
		if t, ok := utils.ParseSheetDate(raw); ok {
			return t
		}
		return now().UTC()
	}
}

// ProviderReportStats is operator feedback from the provider report filters.
type ProviderReportStats struct {
	Filtered int `json:"filtered"`
	NoEmail  int `json:"noEmail"`
}

// Translation is a canonical batch built from one sheet.
type Translation struct {
	Format SheetFormat
	Data   models.ImportData
	Stats  *ProviderReportStats
}

// Translator turns sheet rows into canonical batches.
type Translator struct {
	decodeDate      DateDecoder
	cashbackPercent decimal.Decimal
}

func NewTranslator(decodeDate DateDecoder, cashbackPercent float64) *Translator {
	return &Translator{
		decodeDate:      decodeDate,
		cashbackPercent: decimal.NewFromFloat(cashbackPercent),
	}
}

// Translate detects the layout from headers and runs the matching translator.
func (t *Translator) Translate(headers []string, rows []Row) Translation {
	format := DetectFormat(headers)
	if format == FormatProviderReport {
		data, stats := TranslateProviderReport(rows, t.decodeDate, t.cashbackPercent)
		return Translation{Format: format, Data: data, Stats: &stats}
	}
	return Translation{Format: format, Data: TranslateStandard(rows, t.decodeDate)}
}

// TranslateStandard reads the template layout: one trip per row that carries
// both a reservation id and a total value.
func TranslateStandard(rows []Row, decodeDate DateDecoder) models.ImportData {
	customers := newCustomerSet()
	trips := []models.TripImport{}

	for _, row := range rows {
		cpf, ok := utils.NormalizeCPF(row.Get("cpf"))
		if !ok {
			continue
		}

		customers.add(models.CustomerImport{
			Name:  strings.TrimSpace(row.Get("nome", "name")),
			CPF:   cpf,
			Email: strings.TrimSpace(row.Get("email")),
			Phone: strings.TrimSpace(row.Get("telefone", "phone")),
		})

		reservationID := row.Get("reservationId")
		totalValue := row.Get("totalValue")
		if !truthy(reservationID) || !truthy(totalValue) {
			continue
		}

		status := models.TripStatusPending
		if strings.ToUpper(row.Get("status")) == string(models.TripStatusCompleted) {
			status = models.TripStatusCompleted
		}

		percent := parseNumber(row.Get("cashbackPercent"))
		trips = append(trips, models.TripImport{
			ReservationID:   strings.TrimSpace(reservationID),
			CustomerCPF:     cpf,
			TotalValue:      parseNumber(totalValue),
			ReturnDate:      decodeDate(row.Get("returnDate")).Format(time.RFC3339),
			Status:          status,
			CashbackPercent: &percent,
		})
	}

	return models.ImportData{Customers: customers.list(), Trips: trips}
}

// TranslateProviderReport filters a raw provider sales report and merges its
// revenue lines into one trip per sale number.
func TranslateProviderReport(rows []Row, decodeDate DateDecoder, cashbackPercent decimal.Decimal) (models.ImportData, ProviderReportStats) {
	var stats ProviderReportStats
	customers := newCustomerSet()
	trips := newTripSet()

	for _, row := range rows {
		if row[colPersonType] == "J" {
			stats.Filtered++
			continue
		}
		if row[colSector] != "Lazer" {
			stats.Filtered++
			continue
		}
		if row[colProduct] == "Taxa de Serviço" {
			stats.Filtered++
			continue
		}

		revenue, ok := parseOptionalNumber(row[colRevenue])
		if !ok || !revenue.IsPositive() {
			stats.Filtered++
			continue
		}

		email := primaryEmail(row[colEmail])
		if strings.Contains(email, "@welcome") {
			stats.Filtered++
			continue
		}

		cpf, ok := utils.NormalizeCPF(row[colNationalID])
		if !ok {
			stats.Filtered++
			continue
		}

		added := customers.add(models.CustomerImport{
			Name:  strings.TrimSpace(row[colPayerName]),
			CPF:   cpf,
			Email: email,
			Phone: utils.NormalizePhone(row[colPhone]),
		})
		if added && email == "" {
			stats.NoEmail++
		}

		saleNumber := strings.TrimSpace(row[colSaleNumber])
		if trips.accumulate(saleNumber, revenue) {
			continue
		}
		percent := cashbackPercent
		trips.add(models.TripImport{
			ReservationID:   saleNumber,
			CustomerCPF:     cpf,
			TotalValue:      revenue,
			ReturnDate:      decodeDate(row[colEndDate]).Format(time.RFC3339),
			Status:          models.TripStatusCompleted,
			CashbackPercent: &percent,
		})
	}

	return models.ImportData{Customers: customers.list(), Trips: trips.list()}, stats
}

// primaryEmail lower-cases a mail cell and keeps the address before the first
// ";" or "," separator.
func primaryEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(email, ";,"); i >= 0 {
		email = strings.TrimSpace(email[:i])
	}
	return email
}

// truthy mirrors how a spreadsheet cell reads as "filled": blank and numeric
// zero cells are empty.
func truthy(raw string) bool {
	if raw == "" {
		return false
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && f == 0 {
		return false
	}
	return true
}

// parseNumber coerces a cell to a decimal, defaulting to zero.
func parseNumber(raw string) decimal.Decimal {
	d, _ := parseOptionalNumber(raw)
	return d
}

func parseOptionalNumber(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		return d, true
	}
	// decimal comma, e.g. "1234,56"
	if !strings.Contains(raw, ".") {
		if d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1)); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}

// customerSet keeps the first record seen for each identifier, in insertion order.
type customerSet struct {
	order []string
	byCPF map[string]models.CustomerImport
}

func newCustomerSet() *customerSet {
	return &customerSet{byCPF: make(map[string]models.CustomerImport)}
}

func (s *customerSet) add(c models.CustomerImport) bool {
	if _, ok := s.byCPF[c.CPF]; ok {
		return false
	}
	s.order = append(s.order, c.CPF)
	s.byCPF[c.CPF] = c
	return true
}

func (s *customerSet) list() []models.CustomerImport {
	out := make([]models.CustomerImport, 0, len(s.order))
	for _, cpf := range s.order {
		out = append(out, s.byCPF[cpf])
	}
	return out
}

// tripSet groups trips by reservation id, in insertion order.
type tripSet struct {
	order         []string
	byReservation map[string]*models.TripImport
}

func newTripSet() *tripSet {
	return &tripSet{byReservation: make(map[string]*models.TripImport)}
}

func (s *tripSet) add(t models.TripImport) {
	s.order = append(s.order, t.ReservationID)
	s.byReservation[t.ReservationID] = &t
}

// accumulate adds value to an existing trip and reports whether one existed.
func (s *tripSet) accumulate(reservationID string, value decimal.Decimal) bool {
	t, ok := s.byReservation[reservationID]
	if !ok {
		return false
	}
	t.TotalValue = t.TotalValue.Add(value)
	return true
}

func (s *tripSet) list() []models.TripImport {
	out := make([]models.TripImport, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byReservation[id])
	}
	return out
}
