// File: zone_test.go
// Title: Zone Resolution Tests
// Description: Tests for zone id resolution, offset ids and the location
//              cache.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14

package timex

import (
	"errors"
	"testing"
	"time"
)

func TestLoadZone(t *testing.T) {
	testCases := []struct {
		id     string
		offset int
		name   string
	}{
		{"Z", 0, "UTC"},
		{"UTC", 0, "UTC"},
		{"GMT", 0, "UTC"},
		{"+00:00", 0, "UTC"},
		{"+3", 3 * 3600, "+03:00"},
		{"-05:30", -(5*3600 + 30*60), "-05:30"},
		{"+0530", 5*3600 + 30*60, "+05:30"},
		{"+053015", 5*3600 + 30*60 + 15, "+05:30:15"},
		{"+05:30:15", 5*3600 + 30*60 + 15, "+05:30:15"},
		{"UTC+3", 3 * 3600, "+03:00"},
		{"GMT-05:00", -5 * 3600, "-05:00"},
		{"UT+1", 3600, "+01:00"},
		{"+18:00", MaxOffsetSeconds, "+18:00"},
		{"Asia/Tokyo", 9 * 3600, "Asia/Tokyo"},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			loc, err := LoadZone(tc.id)
			if err != nil {
				t.Fatalf("LoadZone(%s) unexpected error: %v", tc.id, err)
			}
			_, offset := time.Date(2020, time.January, 1, 0, 0, 0, 0, loc).Zone()
			if offset != tc.offset {
				t.Errorf("LoadZone(%s) offset = %d, want %d", tc.id, offset, tc.offset)
			}
			if loc.String() != tc.name {
				t.Errorf("LoadZone(%s) name = %s, want %s", tc.id, loc.String(), tc.name)
			}
		})
	}
}

func TestLoadZoneErrors(t *testing.T) {
	for _, id := range []string{"", "Local", "Mars/Olympus", "+18:01", "+19", "+5:30", "+05:60", "+05-30", "UTC+", "+123"} {
		if _, err := LoadZone(id); !errors.Is(err, ErrInvalidTimeZone) {
			t.Errorf("LoadZone(%q) error = %v, want ErrInvalidTimeZone", id, err)
		}
	}
}

func TestLoadZoneCaches(t *testing.T) {
	first, err := LoadZone("America/New_York")
	if err != nil {
		t.Fatalf("LoadZone() error: %v", err)
	}
	second, _ := LoadZone("America/New_York")
	if first != second {
		t.Error("LoadZone() returned different locations for the same id")
	}
}

func TestConvertZone(t *testing.T) {
	dt := NewDateTime(2017, time.May, 30, 14, 0, 0, 0)

	got, err := ConvertZone(dt, "Europe/Berlin")
	if err != nil {
		t.Fatalf("ConvertZone() error: %v", err)
	}
	if got.String() != "2017-05-30T16:00:00+02:00[Europe/Berlin]" {
		t.Errorf("ConvertZone() = %s", got)
	}

	offset, _ := ConvertZone(dt, "-03:00")
	if offset.String() != "2017-05-30T11:00:00-03:00" {
		t.Errorf("ConvertZone(-03:00) = %s", offset)
	}

	if _, err := ConvertZone(NewDate(2017, time.May, 30), "UTC"); !errors.Is(err, ErrUnsupportedField) {
		t.Errorf("ConvertZone(date) error = %v, want ErrUnsupportedField", err)
	}
	if _, err := ConvertZone(dt, "Nowhere/Else"); !errors.Is(err, ErrInvalidTimeZone) {
		t.Errorf("ConvertZone(unknown) error = %v, want ErrInvalidTimeZone", err)
	}
}
