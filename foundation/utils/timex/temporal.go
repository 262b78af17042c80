// File: temporal.go
// Title: Temporal Values
// Description: Temporal is the immutable value every timex operation works
//              on: a calendar date, a time of day, a date-time without zone
//              or a date-time bound to a zone.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"strings"
	"time"
)

// Kind tells which fields a Temporal carries
type Kind int

const (
	// KindDate is a calendar date without time of day
	KindDate Kind = iota
	// KindTime is a time of day without date; arithmetic wraps at midnight
	KindTime
	// KindDateTime is a date and time of day without zone
	KindDateTime
	// KindZoned is a date-time bound to a zone
	KindZoned
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "date-time"
	case KindZoned:
		return "zoned date-time"
	default:
		return "unknown"
	}
}

const (
	nanosPerSecond = int64(time.Second)
	nanosPerDay    = int64(24 * time.Hour)
	secondsPerDay  = int64(86400)
)

// Temporal is an immutable date, time of day, date-time or zoned date-time.
// Dates, times and date-times are stored as UTC wall clocks; times of day sit
// on 1970-01-01. The zero value is the date-time 0001-01-01T00:00.
type Temporal struct {
	t    time.Time
	kind Kind
}

// NewDate creates a calendar date
func NewDate(year int, month time.Month, day int) Temporal {
	return Temporal{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), kind: KindDate}
}

// NewTime creates a time of day; out-of-range values wrap around midnight
func NewTime(hour, minute, second, nanosecond int) Temporal {
	return timeOfDay(time.Date(1970, 1, 1, hour, minute, second, nanosecond, time.UTC))
}

// NewDateTime creates a date-time without zone
func NewDateTime(year int, month time.Month, day, hour, minute, second, nanosecond int) Temporal {
	return Temporal{t: time.Date(year, month, day, hour, minute, second, nanosecond, time.UTC), kind: KindDateTime}
}

// DateOf returns the calendar date of t on t's own wall clock
func DateOf(t time.Time) Temporal {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// TimeOf returns the time of day of t on t's own wall clock
func TimeOf(t time.Time) Temporal {
	return timeOfDay(t)
}

// DateTimeOf returns the wall clock of t as a date-time without zone
func DateTimeOf(t time.Time) Temporal {
	return Temporal{t: wallUTC(t), kind: KindDateTime}
}

// ZonedOf returns t as a zoned date-time in t's location
func ZonedOf(t time.Time) Temporal {
	return Temporal{t: t, kind: KindZoned}
}

// UTCDateTimeOf returns the instant t as a UTC date-time without zone
func UTCDateTimeOf(t time.Time) Temporal {
	return Temporal{t: t.UTC(), kind: KindDateTime}
}

// FromEpochMillis returns the UTC date-time of a Unix millisecond timestamp
func FromEpochMillis(ms int64) Temporal {
	return UTCDateTimeOf(time.UnixMilli(ms))
}

func timeOfDay(t time.Time) Temporal {
	h, m, s := t.Clock()
	return Temporal{t: time.Date(1970, 1, 1, h, m, s, t.Nanosecond(), time.UTC), kind: KindTime}
}

func wallUTC(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// Kind returns the kind of the value
func (v Temporal) Kind() Kind {
	return v.kind
}

// Time returns the underlying time.Time. Values without zone are returned
// in UTC.
func (v Temporal) Time() time.Time {
	return v.t
}

// Location returns the zone of a zoned value and UTC otherwise
func (v Temporal) Location() *time.Location {
	return v.t.Location()
}

// HasDate reports whether the value carries a calendar date
func (v Temporal) HasDate() bool {
	return v.kind != KindTime
}

// HasTime reports whether the value carries a time of day
func (v Temporal) HasTime() bool {
	return v.kind != KindDate
}

// Supports reports whether the field exists on the value's kind
func (v Temporal) Supports(f Field) bool {
	if !f.Valid() {
		return false
	}
	if f.IsDateBased() {
		return v.HasDate()
	}
	return v.HasTime()
}

// Date returns the calendar date of the value's wall clock
func (v Temporal) Date() (Temporal, error) {
	if !v.HasDate() {
		return Temporal{}, newError(ErrUnsupportedField, "Date", "a time of day has no date")
	}
	return DateOf(v.t), nil
}

// TimeOfDay returns the time of day of the value's wall clock
func (v Temporal) TimeOfDay() (Temporal, error) {
	if !v.HasTime() {
		return Temporal{}, newError(ErrUnsupportedField, "TimeOfDay", "a date has no time of day")
	}
	return timeOfDay(v.t), nil
}

// DateTime returns the value's wall clock as a date-time without zone. A
// date becomes its midnight.
func (v Temporal) DateTime() (Temporal, error) {
	if !v.HasDate() {
		return Temporal{}, newError(ErrUnsupportedField, "DateTime", "a time of day has no date")
	}
	return DateTimeOf(v.t), nil
}

// At combines a date with a time of day into a date-time
func (v Temporal) At(tod Temporal) (Temporal, error) {
	if !v.HasDate() || !tod.HasTime() {
		return Temporal{}, newError(ErrUnsupportedField, "At", "merge needs a date and a time of day").
			WithDetail("date", v.kind.String()).
			WithDetail("time", tod.kind.String())
	}
	y, m, d := v.t.Date()
	h, mi, s := tod.t.Clock()
	return NewDateTime(y, m, d, h, mi, s, tod.t.Nanosecond()), nil
}

// AtZone interprets the value's wall clock in loc
func (v Temporal) AtZone(loc *time.Location) (Temporal, error) {
	if !v.HasDate() {
		return Temporal{}, newError(ErrUnsupportedField, "AtZone", "a time of day cannot be placed in a zone")
	}
	y, mo, d := v.t.Date()
	h, mi, s := v.t.Clock()
	return ZonedOf(time.Date(y, mo, d, h, mi, s, v.t.Nanosecond(), loc)), nil
}

// In returns the same instant in loc. A date-time without zone is taken
// as UTC.
func (v Temporal) In(loc *time.Location) (Temporal, error) {
	switch v.kind {
	case KindDateTime, KindZoned:
		return ZonedOf(v.t.In(loc)), nil
	default:
		return Temporal{}, newError(ErrUnsupportedField, "In", "only date-times denote an instant").
			WithDetail("kind", v.kind.String())
	}
}

// UTC returns the instant of a zoned value as a UTC date-time. Other kinds
// are returned unchanged.
func (v Temporal) UTC() Temporal {
	if v.kind != KindZoned {
		return v
	}
	return UTCDateTimeOf(v.t)
}

// Local drops the zone of a zoned value and keeps its wall clock. Other
// kinds are returned unchanged.
func (v Temporal) Local() Temporal {
	if v.kind != KindZoned {
		return v
	}
	return DateTimeOf(v.t)
}

// EpochMillis returns the Unix milliseconds of the instant. A date-time
// without zone is taken as UTC.
func (v Temporal) EpochMillis() (int64, error) {
	if v.kind != KindDateTime && v.kind != KindZoned {
		return 0, newError(ErrUnsupportedField, "EpochMillis", "only date-times denote an instant").
			WithDetail("kind", v.kind.String())
	}
	return v.t.UnixMilli(), nil
}

// Weekday returns the day of week of the value's wall clock
func (v Temporal) Weekday() time.Weekday {
	return v.t.Weekday()
}

// Compare returns -1, 0 or +1 comparing the instants of both values
func (v Temporal) Compare(other Temporal) int {
	return v.t.Compare(other.t)
}

// Before reports whether v lies before other
func (v Temporal) Before(other Temporal) bool {
	return v.t.Before(other.t)
}

// After reports whether v lies after other
func (v Temporal) After(other Temporal) bool {
	return v.t.After(other.t)
}

// Equal reports whether both values have the same kind and instant
func (v Temporal) Equal(other Temporal) bool {
	return v.kind == other.kind && v.t.Equal(other.t)
}

// String returns the ISO-8601 form of the value:
// 2017-05-30, 14:00:23.439, 2017-05-30T14:00:23.439 or
// 2017-05-30T14:00:23.439+02:00[Europe/Berlin]
func (v Temporal) String() string {
	switch v.kind {
	case KindDate:
		return v.t.Format(layoutISODate)
	case KindTime:
		return v.t.Format(layoutISOTime)
	case KindDateTime:
		return v.t.Format(layoutISODateTime)
	case KindZoned:
		s := v.t.Format(layoutISOZoned)
		if name := v.t.Location().String(); name != "" && name != "UTC" && !isOffsetName(name) {
			s += "[" + name + "]"
		}
		return s
	default:
		return fmt.Sprintf("Temporal(%d)", v.kind)
	}
}

const (
	layoutISODate     = "2006-01-02"
	layoutISOTime     = "15:04:05.999999999"
	layoutISODateTime = "2006-01-02T15:04:05.999999999"
	layoutISOZoned    = "2006-01-02T15:04:05.999999999Z07:00"

	// ISO-8601 allows leaving out zero seconds
	layoutISOTimeMinutes     = "15:04"
	layoutISODateTimeMinutes = "2006-01-02T15:04"
	layoutISOZonedMinutes    = "2006-01-02T15:04Z07:00"
)

// parseLayouts returns the first successful parse of s
func parseLayouts(s string, layouts ...string) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ParseISO parses the forms produced by String, plus RFC 3339 offsets
// without zone name. Seconds may be left out (2017-05-30T14:00, 14:00).
// Values with an offset become zoned values.
func ParseISO(s string) (Temporal, error) {
	if i := len(s) - 1; i > 0 && s[i] == ']' {
		if j := strings.LastIndexByte(s, '['); j > 0 {
			loc, err := LoadZone(s[j+1 : i])
			if err != nil {
				return Temporal{}, err
			}
			t, err := parseLayouts(s[:j], layoutISOZoned, layoutISOZonedMinutes)
			if err != nil {
				return Temporal{}, newError(ErrParse, "ParseISO", "not an ISO date-time: "+s).WithCause(err)
			}
			return ZonedOf(t.In(loc)), nil
		}
	}

	if t, err := parseLayouts(s, layoutISOZoned, layoutISOZonedMinutes); err == nil {
		return ZonedOf(t), nil
	}
	if t, err := parseLayouts(s, layoutISODateTime, layoutISODateTimeMinutes); err == nil {
		return Temporal{t: t, kind: KindDateTime}, nil
	}
	if t, err := time.Parse(layoutISODate, s); err == nil {
		return Temporal{t: t, kind: KindDate}, nil
	}
	if t, err := parseLayouts(s, layoutISOTime, layoutISOTimeMinutes); err == nil {
		return timeOfDay(t), nil
	}
	return Temporal{}, newError(ErrParse, "ParseISO", "not an ISO date or time: "+s).WithDetail("source", s)
}
