package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TemplateSheet and TemplateFileName describe the downloadable import model.
const (
	TemplateSheet    = "Dados"
	TemplateFileName = "modelo-importacao.xlsx"
)

var templateHeaders = []interface{}{
	"nome", "cpf", "email", "telefone", "reservationId",
	"totalValue", "returnDate", "status", "cashbackPercent",
}

var templateRows = [][]interface{}{
	{"Maria Silva", "12345678901", "maria@email.com", "11999998888", "RES001", 5000, "2024-12-01", "COMPLETED", 5},
	{"Maria Silva", "12345678901", "maria@email.com", "11999998888", "RES002", 3000, "2024-12-15", "PENDING", 3},
	{"Joao Santos", "98765432100", "joao@email.com", "21988887777", "RES003", 8000, "2024-11-20", "COMPLETED", 4},
}

// ReadSheet returns the header row and the data rows of the first worksheet.
// Cells are read raw, so dates come back as serial numbers. Rows with no
// value at all are dropped. A sheet without a header row is an error.
func ReadSheet(r io.Reader) ([]string, []Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, &ValidationError{Message: "invalid spreadsheet", Issues: []string{err.Error()}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, &ValidationError{Message: "invalid spreadsheet", Issues: []string{"workbook has no sheets"}}
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil, &ValidationError{Message: "empty sheet"}
	}

	headers := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(line) {
				continue
			}
			v := strings.TrimSpace(line[i])
			if v != "" {
				empty = false
			}
			row[h] = v
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return headers, rows, nil
}

// WriteTemplate writes the Standard layout workbook with a few example rows.
func WriteTemplate(w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(TemplateSheet, "A1", &templateHeaders); err != nil {
		return err
	}
	for i := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TemplateSheet, cell, &templateRows[i]); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(templateHeaders))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(TemplateSheet, "A", last, 18); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}
