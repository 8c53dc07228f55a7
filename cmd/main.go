package main

import (
	"fmt"
	"os"

	"github.com/katiamach/weather-summary/internal/app"
	"github.com/katiamach/weather-summary/internal/logger"
)

func main() {
	code, err := app.Run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather summary: %v", err))
	}

	os.Exit(code)
}
