package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katiamach/weather-summary/internal/model"
)

// ErrNothingRequested is returned when a request selects no summary.
var ErrNothingRequested = errors.New("no summary requested")

// Repository provides necessary repo methods.
type Repository interface {
	Load(path string) (model.Dataset, error)
}

// WeatherService provides weather summary functionality.
type WeatherService struct {
	repo Repository
}

// New creates new WeatherService.
func New(repo Repository) *WeatherService {
	return &WeatherService{
		repo: repo,
	}
}

// Summary loads the data file once and renders the requested summaries.
// The overview comes first, separated from the daily summary by a blank line.
func (ws *WeatherService) Summary(path string, req model.SummaryRequest) (string, error) {
	if !req.Overview && !req.Daily {
		return "", ErrNothingRequested
	}

	dataset, err := ws.repo.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load weather data: %w", err)
	}

	var b strings.Builder

	if req.Overview {
		overview, err := GenerateOverviewSummary(dataset)
		if err != nil {
			return "", fmt.Errorf("failed to generate overview: %w", err)
		}

		b.WriteString(overview)
	}

	if req.Overview && req.Daily {
		b.WriteString("\n")
	}

	if req.Daily {
		daily, err := GenerateDailySummary(dataset)
		if err != nil {
			return "", fmt.Errorf("failed to generate daily summary: %w", err)
		}

		b.WriteString(daily)
	}

	return b.String(), nil
}
