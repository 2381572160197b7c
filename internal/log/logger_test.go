package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo, ComponentService)

	logger.Info("operation completed", FieldOperation, OpAdd, FieldExpenseID, "EXP-20260126-102345")

	out := buf.String()
	for _, part := range []string{"component=service", "operation=add", "expense_id=EXP-20260126-102345"} {
		if !strings.Contains(out, part) {
			t.Fatalf("log line %q missing %q", out, part)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo, ComponentApp).WithComponent(ComponentStorage)

	logger.Warn("operation failed", FieldSuccess, false)

	if !strings.Contains(buf.String(), "component=storage") {
		t.Fatalf("log line %q missing storage component", buf.String())
	}
}

func TestDebugBelowLevelIsDropped(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo, ComponentApp)

	logger.Debug("noise")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
