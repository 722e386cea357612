package utils

import (
	"fmt"
	"strings"
	"time"
)

// DrawDateLayout is the storage format of result and ticket dates
const DrawDateLayout = "2006-01-02"

// FormatDrawDate formats t as a stored draw date
func FormatDrawDate(t time.Time) string {
	return t.Format(DrawDateLayout)
}

// ParseDrawDate accepts the date spellings seen in agency spreadsheets.
// Day-first forms are tried before month-first ones.
func ParseDrawDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	formats := []string{
		DrawDateLayout,
		"02-01-2006",
		"02/01/2006",
		"01/02/2006",
		"2 Jan 2006",
		"Jan 2, 2006",
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		date, err := time.Parse(format, dateStr)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// DisplayDate turns a stored YYYY-MM-DD date into DD-MM-YYYY. Other values are returned unchanged.
func DisplayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ParseLooseBool reads spreadsheet style booleans: yes, y, true, 1
func ParseLooseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}
