// File: business_test.go
// Title: Business Day Tests
// Description: Tests for weekend sets, holiday sets, the business-day walk
//              and the landing-day roll.
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

func TestAdjustToBusinessDay(t *testing.T) {
	friSat, err := NewWeekendSet(time.Friday, time.Saturday)
	if err != nil {
		t.Fatalf("NewWeekendSet() error: %v", err)
	}

	testCases := []struct {
		name     string
		original Temporal
		pattern  string
		weekends WeekendSet
		want     Temporal
	}{
		{
			name:     "walk crosses a weekend",
			original: NewDateTime(2017, time.May, 30, 14, 0, 0, 0),
			pattern:  "D+4",
			weekends: DefaultWeekends,
			want:     NewDateTime(2017, time.June, 5, 14, 0, 0, 0),
		},
		{
			name:     "no weekend on the way",
			original: NewDate(2017, time.May, 29),
			pattern:  "D+2",
			weekends: DefaultWeekends,
			want:     NewDate(2017, time.May, 31),
		},
		{
			name:     "backward walk",
			original: NewDate(2017, time.June, 5),
			pattern:  "D-1",
			weekends: DefaultWeekends,
			want:     NewDate(2017, time.June, 2),
		},
		{
			name:     "weekend origin counts",
			original: NewDate(2017, time.June, 3),
			pattern:  "D+1",
			weekends: DefaultWeekends,
			want:     NewDate(2017, time.June, 6),
		},
		{
			name:     "zero move from saturday",
			original: NewDate(2017, time.June, 3),
			pattern:  "D+0",
			weekends: DefaultWeekends,
			want:     NewDate(2017, time.June, 5),
		},
		{
			name:     "custom weekend",
			original: NewDate(2017, time.June, 1),
			pattern:  "D+1",
			weekends: friSat,
			want:     NewDate(2017, time.June, 4),
		},
		{
			name:     "no weekends",
			original: NewDate(2017, time.May, 30),
			pattern:  "D+4",
			weekends: 0,
			want:     NewDate(2017, time.June, 3),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			modified, err := Modify(tc.original, tc.pattern)
			if err != nil {
				t.Fatalf("Modify() error: %v", err)
			}
			got, err := AdjustToBusinessDay(tc.original, modified, tc.weekends)
			if err != nil {
				t.Fatalf("AdjustToBusinessDay() unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("AdjustToBusinessDay(%s, %s) = %s, want %s", tc.original, modified, got, tc.want)
			}
		})
	}
}

func TestCalendarHolidays(t *testing.T) {
	cal := BusinessCalendar{
		Weekends: DefaultWeekends,
		Holidays: NewHolidaySet(NewDate(2017, time.May, 31)),
	}

	original := NewDate(2017, time.May, 30)
	modified, _ := Modify(original, "D+1")

	got, err := cal.Adjust(original, modified)
	if err != nil {
		t.Fatalf("Adjust() error: %v", err)
	}
	if want := NewDate(2017, time.June, 1); !got.Equal(want) {
		t.Errorf("Adjust() = %s, want %s", got, want)
	}

	if cal.IsBusinessDay(NewDate(2017, time.May, 31)) {
		t.Error("holiday reported as business day")
	}
	if cal.IsBusinessDay(NewDate(2017, time.June, 3)) {
		t.Error("saturday reported as business day")
	}
	if !cal.IsBusinessDay(NewDateTime(2017, time.June, 1, 23, 0, 0, 0)) {
		t.Error("thursday reported as non-business day")
	}
}

func TestCountBusinessDays(t *testing.T) {
	cal := DefaultCalendar()
	mon := NewDate(2017, time.May, 29)
	sun := NewDate(2017, time.June, 4)

	if got, err := cal.CountBusinessDays(mon, sun); err != nil || got != 5 {
		t.Errorf("CountBusinessDays(mon, sun) = %d, %v; want 5", got, err)
	}
	if got, err := cal.CountBusinessDays(sun, mon); err != nil || got != -5 {
		t.Errorf("CountBusinessDays(sun, mon) = %d, %v; want -5", got, err)
	}

	cal.Holidays = NewHolidaySet(NewDate(2017, time.June, 1))
	if got, _ := cal.CountBusinessDays(mon, sun); got != 4 {
		t.Errorf("CountBusinessDays with holiday = %d, want 4", got)
	}
}

func TestRollToBusinessDay(t *testing.T) {
	fri := NewDate(2017, time.June, 2)
	sat := NewDate(2017, time.June, 3)
	sun := NewDate(2017, time.June, 4)
	mon := NewDate(2017, time.June, 5)
	wed := NewDate(2017, time.May, 31)

	testCases := []struct {
		name     string
		original Temporal
		modified Temporal
		want     Temporal
	}{
		{"saturday forward", fri, sat, mon},
		{"saturday backward", mon, sat, fri},
		{"sunday forward", fri, sun, mon},
		{"sunday backward", mon, sun, fri},
		{"weekday unchanged", mon, wed, wed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RollToBusinessDay(tc.original, tc.modified, DefaultWeekends)
			if err != nil {
				t.Fatalf("RollToBusinessDay() unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("RollToBusinessDay(%s, %s) = %s, want %s", tc.original, tc.modified, got, tc.want)
			}
		})
	}
}

func TestInvalidWeekendSet(t *testing.T) {
	all := []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	if _, err := NewWeekendSet(all...); !errors.Is(err, ErrInvalidWeekendSet) {
		t.Errorf("NewWeekendSet(all) error = %v, want ErrInvalidWeekendSet", err)
	}
	if _, err := NewWeekendSet(time.Weekday(9)); !errors.Is(err, ErrInvalidWeekendSet) {
		t.Errorf("NewWeekendSet(9) error = %v, want ErrInvalidWeekendSet", err)
	}

	d := NewDate(2017, time.May, 30)
	if _, err := AdjustToBusinessDay(d, d, allDays); !errors.Is(err, ErrInvalidWeekendSet) {
		t.Errorf("AdjustToBusinessDay(all days) error = %v, want ErrInvalidWeekendSet", err)
	}
	if _, err := RollToBusinessDay(d, d, allDays); !errors.Is(err, ErrInvalidWeekendSet) {
		t.Errorf("RollToBusinessDay(all days) error = %v, want ErrInvalidWeekendSet", err)
	}
	if _, err := AdjustToBusinessDay(NewTime(1, 0, 0, 0), NewTime(2, 0, 0, 0), DefaultWeekends); !errors.Is(err, ErrUnsupportedField) {
		t.Errorf("AdjustToBusinessDay(time) error = %v, want ErrUnsupportedField", err)
	}
}

func TestParseWeekends(t *testing.T) {
	testCases := []struct {
		names []string
		want  string
	}{
		{nil, "SUNDAY,SATURDAY"},
		{[]string{"friday", "SATURDAY"}, "FRIDAY,SATURDAY"},
		{[]string{" Sunday "}, "SUNDAY"},
	}

	for _, tc := range testCases {
		got, err := ParseWeekends(tc.names...)
		if err != nil {
			t.Fatalf("ParseWeekends(%v) unexpected error: %v", tc.names, err)
		}
		if got.String() != tc.want {
			t.Errorf("ParseWeekends(%v) = %s, want %s", tc.names, got, tc.want)
		}
	}

	if _, err := ParseWeekends("funday"); !errors.Is(err, ErrInvalidWeekendSet) {
		t.Errorf("ParseWeekends(funday) error = %v, want ErrInvalidWeekendSet", err)
	}
}

func TestHolidaySet(t *testing.T) {
	set := NewHolidaySet(
		NewDate(2017, time.December, 25),
		NewDateTime(2017, time.January, 1, 12, 0, 0, 0),
		NewDate(2017, time.December, 25),
		NewTime(12, 0, 0, 0),
	)

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	dates := set.Dates()
	if dates[0].String() != "2017-01-01" || dates[1].String() != "2017-12-25" {
		t.Errorf("Dates() = %v", dates)
	}
	if !set.Contains(NewDateTime(2017, time.December, 25, 8, 0, 0, 0)) {
		t.Error("Contains(2017-12-25T08:00) = false")
	}
	if set.Contains(NewDate(2017, time.December, 26)) {
		t.Error("Contains(2017-12-26) = true")
	}
}
