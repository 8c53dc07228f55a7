package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katiamach/weather-summary/internal/convert"
	"github.com/katiamach/weather-summary/internal/model"
	"github.com/katiamach/weather-summary/internal/stats"
)

// DegreeSymbol follows every formatted temperature.
const DegreeSymbol = "°C"

// FormatTemperature renders a Celsius temperature with one decimal place, e.g. "22.5°C".
func FormatTemperature(c float64) string {
	return strconv.FormatFloat(c, 'f', 1, 64) + DegreeSymbol
}

// extreme is a converted extremal temperature and the day it occurs on.
type extreme struct {
	celsius float64
	date    string
}

// GenerateOverviewSummary renders the lowest and highest temperatures of the dataset
// with their dates, and the average low and high.
// Extremes and means are calculated in Fahrenheit and converted for display.
func GenerateOverviewSummary(dataset model.Dataset) (string, error) {
	dates := dataset.Dates()
	minTemps := dataset.MinTemps()
	maxTemps := dataset.MaxTemps()

	lowest, err := findExtreme(stats.FindMin, minTemps, dates)
	if err != nil {
		return "", fmt.Errorf("failed to find lowest temperature: %w", err)
	}

	highest, err := findExtreme(stats.FindMax, maxTemps, dates)
	if err != nil {
		return "", fmt.Errorf("failed to find highest temperature: %w", err)
	}

	avgLow, err := stats.Mean(minTemps)
	if err != nil {
		return "", fmt.Errorf("failed to calculate average low: %w", err)
	}

	avgHigh, err := stats.Mean(maxTemps)
	if err != nil {
		return "", fmt.Errorf("failed to calculate average high: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", len(dataset))
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n", FormatTemperature(lowest.celsius), lowest.date)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n", FormatTemperature(highest.celsius), highest.date)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", FormatTemperature(convert.FahrenheitToCelsius(avgLow)))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", FormatTemperature(convert.FahrenheitToCelsius(avgHigh)))

	return b.String(), nil
}

func findExtreme(find func([]float64) (model.Extremum, error), temps []float64, dates []string) (extreme, error) {
	ext, err := find(temps)
	if err != nil {
		return extreme{}, err
	}

	date, err := convert.ISOToReadableDate(dates[ext.Index])
	if err != nil {
		return extreme{}, err
	}

	return extreme{celsius: convert.FahrenheitToCelsius(ext.Value), date: date}, nil
}

// GenerateDailySummary renders the converted minimum and maximum temperature of every day.
func GenerateDailySummary(dataset model.Dataset) (string, error) {
	var b strings.Builder

	for _, record := range dataset {
		date, err := convert.ISOToReadableDate(record.Date)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "---- %s ----\n", date)
		fmt.Fprintf(&b, "  Minimum Temperature: %s\n", FormatTemperature(convert.FahrenheitToCelsius(record.MinF)))
		fmt.Fprintf(&b, "  Maximum Temperature: %s\n\n", FormatTemperature(convert.FahrenheitToCelsius(record.MaxF)))
	}

	return b.String(), nil
}
