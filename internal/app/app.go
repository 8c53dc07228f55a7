// Package app wires configuration, logging, storage and transport together.
package app

import (
	"fmt"
	"io"

	"github.com/katiamach/weather-summary/internal/config"
	"github.com/katiamach/weather-summary/internal/logger"
	"github.com/katiamach/weather-summary/internal/repository"
	"github.com/katiamach/weather-summary/internal/service"
	"github.com/katiamach/weather-summary/internal/transport/cli/handler"
)

// Run runs the weather summary command and returns its exit code.
// An error is returned only when the application could not be set up.
func Run(args []string, stdout, stderr io.Writer) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return 0, fmt.Errorf("failed to set up logger: %w", err)
	}

	enc, err := repository.EncodingByName(cfg.Encoding)
	if err != nil {
		return 0, fmt.Errorf("failed to configure repository: %w", err)
	}

	repo := repository.New(repository.WithEncoding(enc))
	service := service.New(repo)
	command := handler.NewSummaryCommand(service, cfg.DataFile, stdout, stderr)

	return command.Run(args), nil
}
