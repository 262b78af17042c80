// File: component.go
// Title: Components and Differences
// Description: Extracts single fields from Temporal values and counts the
//              whole units between two values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.2.0: Initial implementation

package timex

import (
	"math"
	"time"
)

// Extract returns the field of v in its natural unit. ms, mc and ns are the
// milli-, micro- and nanosecond of the second.
func Extract(v Temporal, f Field) (int64, error) {
	if !f.Valid() {
		return 0, newError(ErrUnknownFieldCode, "Extract", "unknown field").WithDetail("field", int(f))
	}
	if !v.Supports(f) {
		return 0, newError(ErrUnsupportedField, "Extract", "a "+v.kind.String()+" has no "+f.Name()).
			WithDetail("field", f.Code()).
			WithDetail("kind", v.kind.String())
	}

	t := v.t
	switch f {
	case FieldYear:
		return int64(t.Year()), nil
	case FieldMonth:
		return int64(t.Month()), nil
	case FieldDay:
		return int64(t.Day()), nil
	case FieldHour:
		return int64(t.Hour()), nil
	case FieldMinute:
		return int64(t.Minute()), nil
	case FieldSecond:
		return int64(t.Second()), nil
	default:
		return int64(t.Nanosecond()) / int64(f.Unit()), nil
	}
}

// ExtractCode is Extract with the field given by its code
func ExtractCode(v Temporal, code string) (int64, error) {
	f, err := LookupField(code)
	if err != nil {
		return 0, err
	}
	return Extract(v, f)
}

// wall is a civil date plus nanosecond of day
type wall struct {
	day int64 // days since 1970-01-01
	y   int64
	m   int64
	d   int64
	nod int64
}

func wallOf(t time.Time) wall {
	y, m, d := t.Date()
	return wall{
		day: civilDay(int64(y), int64(m), int64(d)),
		y:   int64(y),
		m:   int64(m),
		d:   int64(d),
		nod: nanoOfDay(t),
	}
}

// civilDay returns the days since 1970-01-01 of a proleptic Gregorian date
func civilDay(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Diff returns minuend minus subtrahend in whole units of f, truncated
// toward zero. Years, months and days are counted on the wall clock: a
// month has elapsed only once the day of month and time of day are reached.
// Clock fields count elapsed time. Diff(a, b, f) == -Diff(b, a, f).
//
// A date compared with a date-time is compared by date; a time of day
// compared with a date-time is compared by time of day.
func Diff(minuend, subtrahend Temporal, f Field) (int64, error) {
	if !f.Valid() {
		return 0, newError(ErrUnknownFieldCode, "Diff", "unknown field").WithDetail("field", int(f))
	}
	for _, v := range []Temporal{minuend, subtrahend} {
		if !v.Supports(f) {
			return 0, newError(ErrUnsupportedField, "Diff", "a "+v.kind.String()+" has no "+f.Name()).
				WithDetail("field", f.Code()).
				WithDetail("kind", v.kind.String())
		}
	}

	end, start := minuend.t, subtrahend.t

	switch {
	case minuend.kind == KindTime || subtrahend.kind == KindTime:
		delta := nanoOfDay(end) - nanoOfDay(start)
		return delta / int64(f.Unit()), nil

	case minuend.kind == KindDate || subtrahend.kind == KindDate:
		end, start = DateOf(end).t, DateOf(start).t
	}

	if f.IsDateBased() {
		if minuend.kind == KindZoned || subtrahend.kind == KindZoned {
			if end.Location() != start.Location() {
				end, start = end.UTC(), start.UTC()
			}
		}
		return diffCalendar(wallOf(end), wallOf(start), f), nil
	}

	return diffElapsed(end, start, f)
}

// DiffCode is Diff with the field given by its code
func DiffCode(minuend, subtrahend Temporal, code string) (int64, error) {
	f, err := LookupField(code)
	if err != nil {
		return 0, err
	}
	return Diff(minuend, subtrahend, f)
}

func diffCalendar(end, start wall, f Field) int64 {
	if f == FieldDay {
		days := end.day - start.day
		if days > 0 && end.nod < start.nod {
			days--
		} else if days < 0 && end.nod > start.nod {
			days++
		}
		return days
	}

	if end.day < start.day || (end.day == start.day && end.nod < start.nod) {
		return -diffCalendar(start, end, f)
	}

	months := (end.y*12 + end.m) - (start.y*12 + start.m)
	if end.d < start.d || (end.d == start.d && end.nod < start.nod) {
		months--
	}
	if f == FieldYear {
		return months / 12
	}
	return months
}

func diffElapsed(end, start time.Time, f Field) (int64, error) {
	secs := end.Unix() - start.Unix()
	nanos := int64(end.Nanosecond()) - int64(start.Nanosecond())

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}

	u := int64(f.Unit())
	if u >= nanosPerSecond {
		return secs / (u / nanosPerSecond), nil
	}

	per := nanosPerSecond / u
	if secs > math.MaxInt64/per || secs < math.MinInt64/per {
		return 0, newError(ErrValueOutOfRange, "Diff", "difference overflows a 64-bit integer").
			WithDetail("field", f.Code())
	}
	whole := secs * per
	part := nanos / u
	if (part > 0 && whole > math.MaxInt64-part) || (part < 0 && whole < math.MinInt64-part) {
		return 0, newError(ErrValueOutOfRange, "Diff", "difference overflows a 64-bit integer").
			WithDetail("field", f.Code())
	}
	return whole + part, nil
}
