package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resorg/internal/config"
	"resorg/internal/logging"
)

func TestConsoleOutputIncludesComponentAndSubject(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "placement")
	logger.Info("file placed",
		logging.String(logging.FieldReservoir, "NICASIO"),
		logging.String(logging.FieldYear, "2005"),
		logging.String(logging.FieldTarget, "/dest/NICASIO/NICASIO_2005.txt"),
		logging.String(logging.FieldRunID, "abc"),
	)

	out := buf.String()
	for _, want := range []string{
		"INFO [placement] NICASIO (2005) – file placed",
		"    - Target: /dest/NICASIO/NICASIO_2005.txt",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Run:") {
		t.Fatalf("run id should be hidden at info level:\n%s", out)
	}
	if strings.Contains(out, ".go:") {
		t.Fatalf("source location should be omitted at info level:\n%s", out)
	}
}

func TestConsoleDebugShowsRunIDAndSource(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.With(logging.String(logging.FieldRunID, "run-1")).Debug("parsed header")

	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "- Run: run-1") {
		t.Fatalf("unexpected debug output:\n%s", out)
	}
	if !strings.Contains(out, "logger_test.go:") {
		t.Fatalf("expected source location in debug output:\n%s", out)
	}
}

func TestConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("file placed", logging.String(logging.FieldReservoir, "LAKE"))

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode json line: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "file placed" || payload["level"] != "info" || payload["reservoir"] != "LAKE" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key: %#v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "json"

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(cfg.LogFile())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
	if !strings.Contains(stderr.String(), `"msg":"hello"`) {
		t.Fatalf("stderr missing entry: %s", stderr.String())
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "skipped", "placement_skipped", logging.Error(errors.New("boom")))

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if payload[logging.FieldEventType] != "placement_skipped" {
		t.Fatalf("missing event type: %#v", payload)
	}
	if payload[logging.FieldErrorHint] == nil || payload[logging.FieldImpact] == nil {
		t.Fatalf("missing injected fields: %#v", payload)
	}
	if payload["error"] != "boom" {
		t.Fatalf("unexpected error field: %#v", payload)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.ErrorWithContext(nil, "ignored", "noop")
}
