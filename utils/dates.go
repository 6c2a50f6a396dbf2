// utils/dates.go
package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var sheetDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseSheetDate decodes a spreadsheet cell holding either a serial date
// number or a date string. Serials keep only the calendar day. ok is false
// for blank or unrecognized values.
func ParseSheetDate(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, false
		}
		d, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		year, month, day := d.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
	}

	for _, layout := range sheetDateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}
