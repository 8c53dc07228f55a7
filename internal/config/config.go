// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "WEATHER"

// Config holds application settings.
type Config struct {
	// DataFile is the CSV file summarized when no path is given on the command line.
	DataFile string `envconfig:"DATA_FILE" default:"data/weather.csv"`

	// Encoding is the character encoding of the CSV file.
	Encoding string `envconfig:"ENCODING" default:"utf-8"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the optional env files and decodes the environment into Config.
// With no filenames godotenv looks for .env in the working directory.
// Variables already set in the environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := new(Config)
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	return cfg, nil
}
