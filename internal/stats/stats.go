// Package stats provides aggregate functions over temperature series.
package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	mstats "github.com/montanaflynn/stats"

	"github.com/katiamach/weather-summary/internal/model"
)

// Statistics errors.
var (
	ErrEmptyInput = errors.New("input must not be empty")
	ErrNotNumeric = errors.New("input contains a non-numeric value")
)

// Mean calculates the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	mean, err := mstats.Mean(values)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean: %w", err)
	}

	return mean, nil
}

// FindMin returns the minimum value and its position.
// In case of multiple matches the index of the last one is returned.
func FindMin(values []float64) (model.Extremum, error) {
	return find(values, func(v, best float64) bool { return v <= best })
}

// FindMax returns the maximum value and its position.
// In case of multiple matches the index of the last one is returned.
func FindMax(values []float64) (model.Extremum, error) {
	return find(values, func(v, best float64) bool { return v >= best })
}

// find scans values keeping the last one for which better holds.
func find(values []float64, better func(v, best float64) bool) (model.Extremum, error) {
	if len(values) == 0 {
		return model.Extremum{}, ErrEmptyInput
	}

	res := model.Extremum{Value: values[0]}
	for i, v := range values {
		if math.IsNaN(v) {
			return model.Extremum{}, fmt.Errorf("%w at index %d", ErrNotNumeric, i)
		}

		if better(v, res.Value) {
			res = model.Extremum{Value: v, Index: i}
		}
	}

	return res, nil
}

// ParseValue converts a textual temperature into a number.
// Surrounding whitespace is ignored; NaN is not a number.
func ParseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0, ErrNotNumeric
	}

	return v, nil
}
