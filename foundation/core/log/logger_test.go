// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formatters, error
//              integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Rewritten for the trimmed logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  LevelTrace,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatText).WithLevel(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered messages were written: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{" DEBUG ", LevelDebug, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, FormatText)
	child := parent.WithField("component", "lexer")

	parent.Info("parent")
	if strings.Contains(buf.String(), "component=lexer") {
		t.Error("parent logger picked up child field")
	}

	buf.Reset()
	child.Info("child")
	if !strings.Contains(buf.String(), "[component=lexer]") {
		t.Errorf("child output missing field: %q", buf.String())
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatText).WithCorrelationID("abc")

	logger.Info("msg", Fields{"b": 2, "a": 1})

	out := buf.String()
	if !strings.Contains(out, "[a=1 b=2]") {
		t.Errorf("fields not sorted: %q", out)
	}
	if !strings.Contains(out, "(cid=abc)") || !strings.Contains(out, "{test}") {
		t.Errorf("context missing: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatJSON)

	err := mdwerror.New("unexpected token").WithCode(mdwerror.CodeSyntax)
	logger.ErrorWithErr("parse failed", err, Fields{"line": 3})

	var data map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &data); jerr != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), jerr)
	}
	if data["message"] != "parse failed" || data["level"] != "error" {
		t.Errorf("unexpected entry: %v", data)
	}
	if data["line"] != float64(3) {
		t.Errorf("line = %v", data["line"])
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok || details["code"] != "SYNTAX" {
		t.Errorf("error_details = %v", data["error_details"])
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	out, err := f.Format(NewEntry(LevelError, "boom"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), LevelError.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("missing color codes: %q", out)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"syntax error is info", mdwerror.New("x").WithCode(mdwerror.CodeSyntax), "info"},
		{"duplicate is warn", mdwerror.New("x").WithCode(mdwerror.CodeDuplicateEntry), "warn"},
		{"config is error", mdwerror.New("x").WithCode(mdwerror.CodeInvalidConfig), "error"},
		{"plain error", errors.New("x"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, FormatJSON).LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if data["level"] != tt.level {
				t.Errorf("level = %v, want %v", data["level"], tt.level)
			}
		})
	}
}

func TestLogErrorOrigin(t *testing.T) {
	var buf bytes.Buffer
	err := mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig).WithDetail("key", "lexer")
	newTestLogger(&buf, FormatJSON).LogError(err)

	var data map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &data); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	origin, _ := data["error_origin"].(string)
	if !strings.HasPrefix(origin, "logger_test.go:") {
		t.Errorf("error_origin = %v", data["error_origin"])
	}
	if data["error_key"] != "lexer" || data["error_code"] != "INVALID_CONFIG" {
		t.Errorf("unexpected entry: %v", data)
	}
}

func TestDerivedLoggers(t *testing.T) {
	var buf, other bytes.Buffer
	base := newTestLogger(&buf, FormatText)

	base.WithName("basic-parser").WithFields(Fields{"run": 1, "file": "a.fb"}).Info("named")
	if out := buf.String(); !strings.Contains(out, "{basic-parser}") || !strings.Contains(out, "[file=a.fb run=1]") {
		t.Errorf("unexpected output: %q", out)
	}

	buf.Reset()
	base.WithOutput(&other).Info("elsewhere")
	if buf.Len() != 0 || !strings.Contains(other.String(), "elsewhere") {
		t.Errorf("WithOutput() wrote to %q / %q", buf.String(), other.String())
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatText)

	timer := logger.StartTimer("tokenize").WithField("bytes", 12)
	timer.Stop()

	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	out := buf.String()
	if !strings.Contains(out, "tokenize completed") || !strings.Contains(out, "bytes=12") {
		t.Errorf("unexpected timer output: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("timer logged more than once: %q", out)
	}
}

func TestTimerFailLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatText)

	logger.WithLevel(LevelInfo).StartTimer("tokenize").Fail(errors.New("bad"))
	if buf.Len() != 0 {
		t.Errorf("debug-level failure should be filtered: %q", buf.String())
	}

	logger.StartTimer("tokenize").Fail(errors.New("bad"))
	out := buf.String()
	if !strings.Contains(out, "[DBG]") || !strings.Contains(out, "tokenize failed") || !strings.Contains(out, "success=false") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, FormatText))
	GetDefault().Info("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
