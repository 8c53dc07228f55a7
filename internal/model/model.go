package model

// WeatherRecord is a single day of weather data. Temperatures are in Fahrenheit.
type WeatherRecord struct {
	Date string
	MinF float64
	MaxF float64
}

// Dataset holds weather records in file order.
type Dataset []WeatherRecord

// Dates returns the date of every record.
func (d Dataset) Dates() []string {
	dates := make([]string, 0, len(d))
	for _, r := range d {
		dates = append(dates, r.Date)
	}

	return dates
}

// MinTemps returns the minimum temperature of every record.
func (d Dataset) MinTemps() []float64 {
	temps := make([]float64, 0, len(d))
	for _, r := range d {
		temps = append(temps, r.MinF)
	}

	return temps
}

// MaxTemps returns the maximum temperature of every record.
func (d Dataset) MaxTemps() []float64 {
	temps := make([]float64, 0, len(d))
	for _, r := range d {
		temps = append(temps, r.MaxF)
	}

	return temps
}

// Extremum is an extremal value and its position in the input.
type Extremum struct {
	Value float64
	Index int
}

// SummaryRequest selects the summaries to render.
type SummaryRequest struct {
	Overview bool
	Daily    bool
}
