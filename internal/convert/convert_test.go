package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/tj/assert"
)

func TestFahrenheitToCelsius(t *testing.T) {
	cases := []struct {
		f float64
		c float64
	}{
		{f: 32, c: 0},
		{f: 212, c: 100},
		{f: 90, c: 32.2},
		{f: 49, c: 9.4},
		{f: -40, c: -40},
		{f: 0, c: -17.8},
		{f: 31.99, c: 0},
		// exact halves round away from zero: 34.25°F is exactly 1.25°C
		{f: 34.25, c: 1.3},
		{f: 29.75, c: -1.3},
	}

	for _, tc := range cases {
		c := FahrenheitToCelsius(tc.f)
		assert.Equal(t, tc.c, c, "converting %v", tc.f)
		assert.False(t, math.Signbit(c) && c == 0, "negative zero for %v", tc.f)
	}
}

func TestISOToReadableDate(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "offset is not converted", in: "2021-07-06T07:00:00+08:00", expected: "Tuesday 06 July 2021"},
		{name: "offset crossing midnight", in: "2021-07-06T23:30:00-10:00", expected: "Tuesday 06 July 2021"},
		{name: "utc designator", in: "2020-02-29T00:00:00Z", expected: "Saturday 29 February 2020"},
		{name: "fractional seconds", in: "2021-07-06T07:00:00.123+08:00", expected: "Tuesday 06 July 2021"},
		{name: "no offset", in: "2018-12-31T12:00:00", expected: "Monday 31 December 2018"},
		{name: "minutes only", in: "2021-07-06T07:00", expected: "Tuesday 06 July 2021"},
		{name: "space separator", in: "2021-07-06 07:00:00+08:00", expected: "Tuesday 06 July 2021"},
		{name: "date only", in: "2021-01-01", expected: "Friday 01 January 2021"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			readable, err := ISOToReadableDate(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, readable)
		})
	}
}

func TestISOToReadableDateInvalid(t *testing.T) {
	for _, in := range []string{"", "06/07/2021", "2021-13-01", "yesterday"} {
		_, err := ISOToReadableDate(in)
		assert.True(t, errors.Is(err, ErrInvalidDate), "input %q", in)
	}
}
