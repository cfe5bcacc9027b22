package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInt parses an integer token. Floats do not pass: "1.5" is rejected
// so the inference ladder can demote the column to FLOAT.
func ParseInt(value string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", value)
	}
	return i, nil
}

// ParseFloat parses a floating-point token.
func ParseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float %q", value)
	}
	return f, nil
}

// ParseBool parses a boolean token. Accepted spellings: true/false in any
// case, T/F, and 0/1 are NOT accepted (they stay integers).
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "t":
		return true, nil
	case "false", "f":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", value)
}

// ParseDate parses a date token in the given layout (Go reference time
// layout, e.g. "2006-01-02").
func ParseDate(value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected layout %s", value, layout)
	}
	return t, nil
}

// ValidateDate validates a date string in YYYY-MM-DD format
func ValidateDate(value string) error {
	_, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD (e.g., '2024-01-13')")
	}
	return nil
}
