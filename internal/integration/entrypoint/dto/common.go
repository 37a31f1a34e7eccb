package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a DateLayout string in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ParseOptionalDate parses a DateLayout string, returning nil for nil input.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formats a time as a DateLayout string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Money renders an amount with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// OptionalDecimal converts an optional float into an optional decimal.
func OptionalDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
