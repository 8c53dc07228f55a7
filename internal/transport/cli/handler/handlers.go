package handler

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katiamach/weather-summary/internal/logger"
	"github.com/katiamach/weather-summary/internal/model"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// CommandName is used in usage messages.
const CommandName = "weather-summary"

var (
	errNoDataFile = errors.New("data file not provided")
	// errBadUsage is returned once the problem has been reported to the user.
	errBadUsage = errors.New("bad usage")
)

// WeatherService provides weather summary methods.
type WeatherService interface {
	Summary(path string, req model.SummaryRequest) (string, error)
}

// SummaryCommand is a command line handler printing weather summaries.
type SummaryCommand struct {
	service     WeatherService
	defaultPath string
	stdout      io.Writer
	stderr      io.Writer
}

// NewSummaryCommand creates new SummaryCommand.
// defaultPath is summarized when no file argument is given.
func NewSummaryCommand(service WeatherService, defaultPath string, stdout, stderr io.Writer) *SummaryCommand {
	return &SummaryCommand{
		service:     service,
		defaultPath: defaultPath,
		stdout:      stdout,
		stderr:      stderr,
	}
}

type summaryRequest struct {
	model.SummaryRequest
	path string
}

// Run handles the command line arguments (without the program name) and returns the exit code.
func (c *SummaryCommand) Run(args []string) int {
	req, err := c.parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		return ExitUsage
	}

	logger.WithField("file", req.path).Debug("summarizing weather data")

	summary, err := c.service.Summary(req.path, req.SummaryRequest)
	if err != nil {
		logger.Error(fmt.Errorf("failed to get weather summary: %v", err))
		respondErr(c.stderr, err)
		return ExitError
	}

	respond(c.stdout, summary)

	return ExitOK
}

func (c *SummaryCommand) parseArgs(args []string) (*summaryRequest, error) {
	req := new(summaryRequest)

	fs := flag.NewFlagSet(CommandName, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.BoolVar(&req.Overview, "overview", false, "print the overview summary")
	fs.BoolVar(&req.Daily, "daily", false, "print the daily summary")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-overview] [-daily] [file]\n", CommandName)
		fs.PrintDefaults()
	}

	// the flag set reports its own parse errors
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errBadUsage
	}

	switch fs.NArg() {
	case 0:
		req.path = c.defaultPath
	case 1:
		req.path = fs.Arg(0)
	default:
		return nil, c.usageErr(fs, fmt.Errorf("expected at most one file argument, got %d", fs.NArg()))
	}

	if req.path == "" {
		return nil, c.usageErr(fs, errNoDataFile)
	}

	// neither flag means both summaries
	if !req.Overview && !req.Daily {
		req.Overview, req.Daily = true, true
	}

	return req, nil
}

func (c *SummaryCommand) usageErr(fs *flag.FlagSet, err error) error {
	respondErr(c.stderr, err)
	fs.Usage()

	return errBadUsage
}
