package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bsharp-lang/diagsync/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestTestLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Str("code", "CS0103").Msg("test message")

	testLogger.AssertContains(t, "CS0103")
	testLogger.AssertContains(t, "test message")
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name  string
		level string
		log   func()
		want  string
	}{
		{
			name:  "info level suppresses debug",
			level: "info",
			log: func() {
				logging.Debug().Msg("hidden")
				logging.Info().Msg("visible")
			},
			want: "visible",
		},
		{
			name:  "warn level suppresses info",
			level: "warn",
			log: func() {
				logging.Info().Msg("hidden")
				logging.Warn().Msg("visible")
			},
			want: "visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cfg := &logging.Config{Level: tt.level, Format: "json"}
			logger := logging.NewLoggerFromConfig(cfg)
			logger = logger.Output(buf)
			logging.SetDefault(logger)

			tt.log()

			output := buf.String()
			if !strings.Contains(output, tt.want) {
				t.Errorf("Expected %q in output, got: %s", tt.want, output)
			}
			if strings.Contains(output, "hidden") {
				t.Errorf("Expected suppressed message to be absent, got: %s", output)
			}
		})
	}
}
