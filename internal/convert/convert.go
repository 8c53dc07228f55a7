// Package convert converts temperatures and dates into display units.
package convert

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// ErrInvalidDate is returned when a date is not in ISO-8601 format.
var ErrInvalidDate = errors.New("invalid ISO-8601 date")

// ReadableDateLayout renders dates like "Tuesday 06 July 2021".
const ReadableDateLayout = "Monday 02 January 2006"

// isoLayouts are tried in order; time.Parse accepts fractional seconds after the seconds field.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FahrenheitToCelsius converts a temperature to Celsius, rounded to 1 decimal place.
func FahrenheitToCelsius(f float64) float64 {
	c, err := stats.Round((f-32)*5/9, 1)
	if err != nil {
		// only NaN fails to round
		return c
	}

	// turns -0 into 0
	return c + 0
}

// ParseISODate parses an ISO-8601 date or datetime.
// An offset, if present, is kept as the location of the result.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ISOToReadableDate converts an ISO-8601 date into a human-readable format
// using the date components as written, without timezone conversion.
func ISOToReadableDate(s string) (string, error) {
	t, err := ParseISODate(s)
	if err != nil {
		return "", err
	}

	return t.Format(ReadableDateLayout), nil
}
