package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tj/assert"
)

// restoreLogger puts the default logger back into its initial state after the test.
func restoreLogger(t *testing.T) {
	t.Helper()

	level := defaultLogger.GetLevel()
	formatter := defaultLogger.Formatter

	t.Cleanup(func() {
		defaultLogger.SetLevel(level)
		defaultLogger.SetFormatter(formatter)
	})
}

func TestSetup(t *testing.T) {
	cases := []struct {
		name              string
		level             string
		format            string
		expectedFormatter logrus.Formatter
		wantErr           bool
	}{
		{name: "text debug", level: "debug", format: FormatText, expectedFormatter: &logrus.TextFormatter{}},
		{name: "json warn", level: "warn", format: FormatJSON, expectedFormatter: &logrus.JSONFormatter{}},
		{name: "bad level", level: "loud", format: FormatText, wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			restoreLogger(t)

			err := Setup(tc.level, tc.format)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			lvl, _ := logrus.ParseLevel(tc.level)
			assert.Equal(t, lvl, defaultLogger.GetLevel())
			assert.IsType(t, tc.expectedFormatter, defaultLogger.Formatter)
		})
	}
}

func TestSetupIsUndone(t *testing.T) {
	formatter := defaultLogger.Formatter
	level := defaultLogger.GetLevel()

	t.Run("json", func(t *testing.T) {
		restoreLogger(t)

		err := Setup("debug", FormatJSON)
		assert.NoError(t, err)
	})

	assert.Equal(t, formatter, defaultLogger.Formatter)
	assert.Equal(t, level, defaultLogger.GetLevel())
}
