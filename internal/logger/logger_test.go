package logger_test

import (
	"bytes"
	"strings"
	"testing"

	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/example/processing-orchestrator/internal/logger"
)

func TestNewSetsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New("production", "warn", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info().Msg("info should be suppressed")
	log.Warn().Msg("warn should appear")

	out := buf.String()
	if strings.Contains(out, "info should be suppressed") {
		t.Fatalf("expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn should appear") {
		t.Fatalf("expected warn output, got %q", out)
	}
}

func TestNewDefaultsEmptyLevelToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New("production", "", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Debug().Msg("debug hidden")
	log.Info().Msg("info visible")

	out := buf.String()
	if strings.Contains(out, "debug hidden") {
		t.Fatalf("expected debug to be filtered, got %q", out)
	}
	if !strings.Contains(out, "info visible") {
		t.Fatalf("expected info output, got %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := logger.New("development", "shout"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewEmitsJSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New("production", "info", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info().Str("key", "value").Msg("structured")

	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
}

func TestWithOTelBridgeKeepsWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	base, err := logger.New("production", "info", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider := sdklog.NewLoggerProvider()
	hooked := logger.WithOTelBridge(base, provider)

	hooked.Info().Msg("bridged event")

	if !strings.Contains(buf.String(), "bridged event") {
		t.Fatalf("expected bridged event on the writer, got %q", buf.String())
	}
}
