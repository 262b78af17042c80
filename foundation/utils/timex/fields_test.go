// File: fields_test.go
// Title: Field Code Tests
// Description: Tests for the field table and longest-first code matching.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-09-14

package timex

import (
	"errors"
	"testing"
)

func TestLookupField(t *testing.T) {
	testCases := []struct {
		code string
		want Field
	}{
		{"Y", FieldYear},
		{"M", FieldMonth},
		{"D", FieldDay},
		{"h", FieldHour},
		{"m", FieldMinute},
		{"s", FieldSecond},
		{"ms", FieldMillisecond},
		{"mc", FieldMicrosecond},
		{"ns", FieldNanosecond},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			got, err := LookupField(tc.code)
			if err != nil {
				t.Fatalf("LookupField(%s) unexpected error: %v", tc.code, err)
			}
			if got != tc.want {
				t.Errorf("LookupField(%s) = %v, want %v", tc.code, got, tc.want)
			}
			if got.Code() != tc.code {
				t.Errorf("Code() = %s, want %s", got.Code(), tc.code)
			}
		})
	}

	for _, code := range []string{"", "y", "H", "n", "MS", "ms "} {
		if _, err := LookupField(code); !errors.Is(err, ErrUnknownFieldCode) {
			t.Errorf("LookupField(%q) error = %v, want ErrUnknownFieldCode", code, err)
		}
	}
}

func TestMatchFieldPrefix(t *testing.T) {
	testCases := []struct {
		input string
		want  Field
	}{
		{"ms=5", FieldMillisecond},
		{"mc+1", FieldMicrosecond},
		{"ns-3", FieldNanosecond},
		{"m=5", FieldMinute},
		{"s=5", FieldSecond},
		{"M+1", FieldMonth},
	}

	for _, tc := range testCases {
		got, ok := matchFieldPrefix(tc.input)
		if !ok || got != tc.want {
			t.Errorf("matchFieldPrefix(%s) = %v, %v; want %v", tc.input, got, ok, tc.want)
		}
	}

	if _, ok := matchFieldPrefix("n+1"); ok {
		t.Error("matchFieldPrefix(n+1) should not match")
	}
}

func TestFieldTable(t *testing.T) {
	fields := Fields()
	if len(fields) != 9 {
		t.Fatalf("Fields() = %d entries, want 9", len(fields))
	}

	for _, f := range fields {
		if f.IsDateBased() != (f <= FieldDay) {
			t.Errorf("%s.IsDateBased() = %v", f, f.IsDateBased())
		}
		if f.IsDateBased() && f.Unit() != 0 {
			t.Errorf("%s.Unit() = %v, want 0", f, f.Unit())
		}
	}

	if min, max := FieldMillisecond.Range(); min != 0 || max != 999 {
		t.Errorf("FieldMillisecond.Range() = %d..%d", min, max)
	}
	if FieldMicrosecond.Name() != "microsecond" {
		t.Errorf("FieldMicrosecond.Name() = %s", FieldMicrosecond.Name())
	}
	if Field(42).Valid() {
		t.Error("Field(42).Valid() = true")
	}
}
