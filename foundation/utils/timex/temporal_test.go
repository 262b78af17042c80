// File: temporal_test.go
// Title: Temporal Value Tests
// Description: Tests for constructors, conversions, ISO rendering and
//              ISO parsing of Temporal values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-09-14

package timex

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

// iso parses an ISO value or fails the test
func iso(t *testing.T, s string) Temporal {
	t.Helper()
	v, err := ParseISO(s)
	if err != nil {
		t.Fatalf("ParseISO(%s) unexpected error: %v", s, err)
	}
	return v
}

func TestTemporalString(t *testing.T) {
	berlin, err := LoadZone("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadZone() error: %v", err)
	}
	zoned, _ := NewDateTime(2017, time.May, 30, 14, 0, 0, 0).In(berlin)

	testCases := []struct {
		name  string
		value Temporal
		want  string
	}{
		{"date", NewDate(2017, time.May, 30), "2017-05-30"},
		{"time", NewTime(14, 0, 23, 439_000_000), "14:00:23.439"},
		{"time without fraction", NewTime(9, 5, 0, 0), "09:05:00"},
		{"date-time", NewDateTime(2017, time.May, 30, 14, 0, 23, 439_000_000), "2017-05-30T14:00:23.439"},
		{"zoned", zoned, "2017-05-30T16:00:00+02:00[Europe/Berlin]"},
		{"utc zoned", ZonedOf(time.Date(2017, 5, 30, 14, 0, 0, 0, time.UTC)), "2017-05-30T14:00:00Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.String(); got != tc.want {
				t.Errorf("String() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseISO(t *testing.T) {
	testCases := []struct {
		input string
		kind  Kind
	}{
		{"2017-05-30", KindDate},
		{"14:00:23.439", KindTime},
		{"2017-05-30T14:00:23.439", KindDateTime},
		{"2017-05-30T16:00:00+02:00", KindZoned},
		{"2017-05-30T16:00:00+02:00[Europe/Berlin]", KindZoned},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v := iso(t, tc.input)
			if v.Kind() != tc.kind {
				t.Errorf("ParseISO(%s).Kind() = %v, want %v", tc.input, v.Kind(), tc.kind)
			}
			if v.Kind() != KindZoned || tc.input[len(tc.input)-1] == ']' {
				if got := v.String(); got != tc.input {
					t.Errorf("ParseISO(%s).String() = %s", tc.input, got)
				}
			}
		})
	}

	if _, err := ParseISO("30.05.2017"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseISO(30.05.2017) error = %v, want ErrParse", err)
	}
	if _, err := ParseISO("2017-05-30T16:00:00+02:00[Mars/Base]"); !errors.Is(err, ErrInvalidTimeZone) {
		t.Errorf("ParseISO(unknown zone) error = %v, want ErrInvalidTimeZone", err)
	}
}

func TestParseISOWithoutSeconds(t *testing.T) {
	testCases := []struct {
		input string
		kind  Kind
		utc   string
	}{
		{"2017-05-30T14:00", KindDateTime, "2017-05-30T14:00:00"},
		{"14:00", KindTime, "14:00:00"},
		{"2017-05-30T16:00+02:00", KindZoned, "2017-05-30T14:00:00"},
		{"2017-05-30T16:00Z", KindZoned, "2017-05-30T16:00:00"},
		{"2017-05-30T16:00+02:00[Europe/Berlin]", KindZoned, "2017-05-30T14:00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v := iso(t, tc.input)
			if v.Kind() != tc.kind {
				t.Errorf("ParseISO(%s).Kind() = %v, want %v", tc.input, v.Kind(), tc.kind)
			}
			if got := v.UTC().String(); got != tc.utc {
				t.Errorf("ParseISO(%s).UTC() = %s, want %s", tc.input, got, tc.utc)
			}
		})
	}

	if _, err := ParseISO("2017-05-30T14"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseISO(2017-05-30T14) error = %v, want ErrParse", err)
	}
}

func TestTemporalConversions(t *testing.T) {
	berlin, _ := LoadZone("Europe/Berlin")
	dt := NewDateTime(2017, time.May, 30, 14, 0, 0, 0)

	zoned, err := dt.In(berlin)
	if err != nil {
		t.Fatalf("In() error: %v", err)
	}
	if got := zoned.Local().String(); got != "2017-05-30T16:00:00" {
		t.Errorf("Local() = %s, want 2017-05-30T16:00:00", got)
	}
	if !zoned.UTC().Equal(dt) {
		t.Errorf("UTC() = %v, want %v", zoned.UTC(), dt)
	}

	atZone, _ := dt.AtZone(berlin)
	if got := atZone.UTC().String(); got != "2017-05-30T12:00:00" {
		t.Errorf("AtZone().UTC() = %s, want 2017-05-30T12:00:00", got)
	}

	merged, err := NewDate(2017, time.May, 30).At(NewTime(14, 5, 13, 801_000_000))
	if err != nil {
		t.Fatalf("At() error: %v", err)
	}
	if got := merged.String(); got != "2017-05-30T14:05:13.801" {
		t.Errorf("At() = %s", got)
	}

	if _, err := NewTime(1, 0, 0, 0).In(berlin); !errors.Is(err, ErrUnsupportedField) {
		t.Errorf("In() on a time of day error = %v, want ErrUnsupportedField", err)
	}
	if _, err := NewTime(1, 0, 0, 0).At(NewTime(2, 0, 0, 0)); !errors.Is(err, ErrUnsupportedField) {
		t.Errorf("At() without date error = %v, want ErrUnsupportedField", err)
	}

	date, _ := merged.Date()
	tod, _ := merged.TimeOfDay()
	if date.String() != "2017-05-30" || tod.String() != "14:05:13.801" {
		t.Errorf("Date()/TimeOfDay() = %s / %s", date, tod)
	}
}

func TestEpochMillis(t *testing.T) {
	v := FromEpochMillis(1496152823439)
	if got := v.String(); got != "2017-05-30T14:00:23.439" {
		t.Errorf("FromEpochMillis() = %s", got)
	}

	ms, err := v.EpochMillis()
	if err != nil || ms != 1496152823439 {
		t.Errorf("EpochMillis() = %d, %v", ms, err)
	}

	if _, err := NewDate(2017, time.May, 30).EpochMillis(); !errors.Is(err, ErrUnsupportedField) {
		t.Errorf("EpochMillis() on a date error = %v, want ErrUnsupportedField", err)
	}
}

func TestNewTimeWraps(t *testing.T) {
	if got := NewTime(25, 0, 0, 0).String(); got != "01:00:00" {
		t.Errorf("NewTime(25, 0, 0, 0) = %s, want 01:00:00", got)
	}
}
