// Package repository provides methods to load weather records from CSV files.
package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/katiamach/weather-summary/internal/logger"
	"github.com/katiamach/weather-summary/internal/model"
	"github.com/katiamach/weather-summary/internal/stats"
)

// CSV columns.
const (
	dateColumn = "date"
	minColumn  = "min"
	maxColumn  = "max"
)

// Loader errors.
var (
	ErrNoHeader        = errors.New("file has no header row")
	ErrMissingColumn   = errors.New("required column is missing from header")
	ErrUnknownEncoding = errors.New("unknown character encoding")
)

var requiredColumns = []string{dateColumn, minColumn, maxColumn}

// ParseError describes a row that could not be turned into a weather record.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errShortRow = errors.New("row has fewer fields than header")

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// EncodingByName looks up a supported character encoding.
func EncodingByName(name string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}

// Option configures a Repository.
type Option func(*Repository)

// WithEncoding sets the character encoding of loaded files.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *Repository) {
		r.encoding = enc
	}
}

// Repository reads weather records from CSV files.
type Repository struct {
	encoding encoding.Encoding
}

// New creates new Repository. Files are read as UTF-8 unless configured otherwise.
func New(opts ...Option) *Repository {
	r := &Repository{encoding: unicode.UTF8}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Load reads the CSV file at path.
func (r *Repository) Load(path string) (model.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	return r.LoadReader(file)
}

// LoadReader reads weather records from CSV content with date, min and max columns.
// Empty rows are skipped.
func (r *Repository) LoadReader(in io.Reader) (model.Dataset, error) {
	// a UTF-8 byte order mark overrides the configured encoding
	decoded := transform.NewReader(in, unicode.BOMOverride(r.encoding.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var dataset model.Dataset
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := reader.FieldPos(0)

		if isEmptyRow(row) {
			logger.WithField("line", line).Debug("skipping empty row")
			continue
		}

		record, err := parseRecord(row, columns, line)
		if err != nil {
			return nil, err
		}

		dataset = append(dataset, record)
	}

	return dataset, nil
}

// columnIndexes finds the position of every required column in header.
func columnIndexes(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return columns, nil
}

func isEmptyRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}

// parseRecord builds a weather record from a CSV row.
func parseRecord(row []string, columns map[string]int, line int) (model.WeatherRecord, error) {
	field := func(name string) (string, error) {
		i := columns[name]
		if i >= len(row) {
			return "", &ParseError{Line: line, Column: name, Err: errShortRow}
		}

		return strings.TrimSpace(row[i]), nil
	}

	date, err := field(dateColumn)
	if err != nil {
		return model.WeatherRecord{}, err
	}

	minF, err := parseTemperature(field, minColumn, line)
	if err != nil {
		return model.WeatherRecord{}, err
	}

	maxF, err := parseTemperature(field, maxColumn, line)
	if err != nil {
		return model.WeatherRecord{}, err
	}

	return model.WeatherRecord{Date: date, MinF: minF, MaxF: maxF}, nil
}

func parseTemperature(field func(string) (string, error), column string, line int) (float64, error) {
	raw, err := field(column)
	if err != nil {
		return 0, err
	}

	temp, err := stats.ParseValue(raw)
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Value: raw, Err: err}
	}

	return temp, nil
}
