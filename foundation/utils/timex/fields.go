// File: fields.go
// Title: Field Codes
// Description: The static table of calendar and clock fields addressed by
//              modify patterns, component extraction and differences.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.2.0: Initial field table

package timex

import (
	"time"
)

// Field identifies one calendar or clock component
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMillisecond
	FieldMicrosecond
	FieldNanosecond
)

// Year range supported by Temporal values
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

type fieldInfo struct {
	code      string
	name      string
	min       int64
	max       int64
	dateBased bool
	unit      time.Duration
}

var fieldTable = [...]fieldInfo{
	FieldYear:        {"Y", "year", MinYear, MaxYear, true, 0},
	FieldMonth:       {"M", "month", 1, 12, true, 0},
	FieldDay:         {"D", "day", 1, 31, true, 0},
	FieldHour:        {"h", "hour", 0, 23, false, time.Hour},
	FieldMinute:      {"m", "minute", 0, 59, false, time.Minute},
	FieldSecond:      {"s", "second", 0, 59, false, time.Second},
	FieldMillisecond: {"ms", "millisecond", 0, 999, false, time.Millisecond},
	FieldMicrosecond: {"mc", "microsecond", 0, 999_999, false, time.Microsecond},
	FieldNanosecond:  {"ns", "nanosecond", 0, 999_999_999, false, time.Nanosecond},
}

// fieldsByCodeLength lists the fields in matching order, two-letter codes
// first so that "ms" is never read as "m" followed by "s".
var fieldsByCodeLength = []Field{
	FieldMillisecond, FieldMicrosecond, FieldNanosecond,
	FieldYear, FieldMonth, FieldDay, FieldHour, FieldMinute, FieldSecond,
}

// Fields returns all fields from year down to nanosecond
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	for i := range fieldTable {
		out[i] = Field(i)
	}
	return out
}

// LookupField returns the field with exactly the given code
func LookupField(code string) (Field, error) {
	for i, info := range fieldTable {
		if info.code == code {
			return Field(i), nil
		}
	}
	return 0, newError(ErrUnknownFieldCode, "LookupField", "unknown field code: "+code).
		WithDetail("code", code)
}

// Valid reports whether f is a known field
func (f Field) Valid() bool {
	return f >= FieldYear && int(f) < len(fieldTable)
}

// Code returns the short code of the field ("Y", "ms", ...)
func (f Field) Code() string {
	if !f.Valid() {
		return "?"
	}
	return fieldTable[f].code
}

// Name returns the English name of the field
func (f Field) Name() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldTable[f].name
}

// String implements fmt.Stringer
func (f Field) String() string {
	return f.Code()
}

// Range returns the valid value range of the field
func (f Field) Range() (min, max int64) {
	if !f.Valid() {
		return 0, 0
	}
	return fieldTable[f].min, fieldTable[f].max
}

// IsDateBased reports whether the field belongs to the calendar date
func (f Field) IsDateBased() bool {
	return f.Valid() && fieldTable[f].dateBased
}

// Unit returns the elapsed-time unit of a clock field and 0 for date fields
func (f Field) Unit() time.Duration {
	if !f.Valid() {
		return 0
	}
	return fieldTable[f].unit
}

// matchFieldPrefix returns the field whose code starts s, longest code first
func matchFieldPrefix(s string) (Field, bool) {
	for _, f := range fieldsByCodeLength {
		code := fieldTable[f].code
		if len(s) >= len(code) && s[:len(code)] == code {
			return f, true
		}
	}
	return 0, false
}
