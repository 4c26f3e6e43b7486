package observability

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/prakashprasanna/employee-directory/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q): expected %v, got %v", raw, want, got)
		}
	}
}

func TestNewLoggerFormats(t *testing.T) {
	app := config.AppConfig{Name: "employee-directory", Version: "test", Env: "production"}

	for _, format := range []string{"", "json", "console"} {
		logger, err := NewLogger(config.LoggerConfig{Level: "warn", Format: format}, app)
		if err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
		if logger.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("format %q: info must be disabled at warn level", format)
		}
	}

	if _, err := NewLogger(config.LoggerConfig{Format: "xml"}, app); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
