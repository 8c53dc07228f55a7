package handler

import (
	"fmt"
	"io"

	"github.com/katiamach/weather-summary/internal/logger"
)

// Respond writes summary text to the output.
func respond(w io.Writer, text string) {
	_, err := io.WriteString(w, text)
	if err != nil {
		logger.Error(fmt.Errorf("can't write output: %v", err))
	}
}

// RespondErr writes an error message to the output.
func respondErr(w io.Writer, err error) {
	respond(w, fmt.Sprintf("error: %v\n", err))
}
