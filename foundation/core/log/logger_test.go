// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formats, error
//              logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"trc", LevelTrace, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"json": FormatJSON, "Text": FormatText, "console": FormatConsole, "logfmt": FormatLogfmt,
	} {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", input, got, err, want)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), `message="shown"`) {
		t.Errorf("missing warn entry in %q", buf.String())
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(FormatLogfmt, LevelDebug)
	child := base.WithField("component", "timex")

	base.Info("from base")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("WithField() leaked into parent logger: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), `component="timex"`) {
		t.Errorf("child logger missing field: %q", buf.String())
	}
}

func TestLogfmtSortedFields(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt, LevelDebug)
	logger.WithCorrelationID("cid-1").WithName("gauss").Info("modified", Fields{"z": 1, "a": "x"})

	line := buf.String()
	if strings.Index(line, "a=") > strings.Index(line, "z=") {
		t.Errorf("fields not sorted: %q", line)
	}
	for _, want := range []string{"logger=gauss", "correlation_id=cid-1", "level=info"} {
		if !strings.Contains(line, want) {
			t.Errorf("missing %q in %q", want, line)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)
	err := mdwerror.New("bad zone").WithCode(mdwerror.CodeInvalidTimeZone)
	logger.ErrorWithErr("zone lookup failed", err, Fields{"zone": "Mars/Base"})

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(buf.Bytes(), &decoded); uErr != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), uErr)
	}

	if decoded["zone"] != "Mars/Base" {
		t.Errorf("zone = %v", decoded["zone"])
	}
	if decoded["error"] != "bad zone" {
		t.Errorf("error = %v", decoded["error"])
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INVALID_TIME_ZONE" {
		t.Errorf("error_details = %v", decoded["error_details"])
	}
}

func TestTextAndConsoleFormat(t *testing.T) {
	entry := NewEntry(LevelWarn, "weekend rolled")
	entry.Fields["days"] = 2

	text := NewTextFormatter()
	text.DisableTimestamp = true
	out, _ := text.Format(entry)
	if string(out) != "[WRN] weekend rolled [days=2]\n" {
		t.Errorf("TextFormatter = %q", out)
	}

	console := NewConsoleFormatter()
	console.DisableTimestamp = true
	colored, _ := console.Format(entry)
	if !strings.HasPrefix(string(colored), LevelWarn.Color()) {
		t.Errorf("ConsoleFormatter missing color prefix: %q", colored)
	}
}

func TestLogErrorLevels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"input error", mdwerror.New("bad pattern").WithCode(mdwerror.CodeMalformedPattern), "level=debug"},
		{"config error", mdwerror.New("bad config").WithCode(mdwerror.CodeConfigError), "level=error"},
		{"plain error", errors.New("boom"), "level=error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatLogfmt, LevelTrace)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("LogError() = %q, want %s", buf.String(), tt.want)
			}
		})
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt, LevelDebug)

	timer := logger.StartTimer("holidays.load").WithField("years", 5)
	time.Sleep(time.Millisecond)
	if d := timer.Stop(); d <= 0 {
		t.Errorf("Stop() = %v, want positive duration", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	line := buf.String()
	for _, want := range []string{`message="holidays.load completed"`, `operation="holidays.load"`, "years=5", "duration_ms="} {
		if !strings.Contains(line, want) {
			t.Errorf("timer output missing %q: %q", want, line)
		}
	}

	buf.Reset()
	logger.StartTimer("parse").StopWithError(errors.New("no match"))
	if !strings.Contains(buf.String(), "level=warn") || !strings.Contains(buf.String(), `error="no match"`) {
		t.Errorf("StopWithError() output = %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("dropped")
}
