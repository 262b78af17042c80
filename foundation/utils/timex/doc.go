// Package timex implements calendar arithmetic for scripting callers.
//
// Package: timex
// Title: Date/Time Toolkit
// Description: This package provides the date/time core of gauss: modify
//              patterns, component extraction and differences, the
//              business-day walk, format patterns with length-based
//              detection, and zone resolution. All values are immutable and
//              every function is safe for concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-09-14 v0.2.0: Temporal values, modify patterns, components, business walk
//
// # Temporal Values
//
// A Temporal is a date (KindDate), a time of day (KindTime), a date-time
// without zone (KindDateTime) or a date-time bound to a zone (KindZoned).
// Date-times without zone are treated as UTC wherever an instant is needed.
//
//	d := timex.NewDate(2017, time.May, 30)
//	dt := timex.NewDateTime(2017, time.May, 30, 14, 0, 23, 439_000_000)
//	zoned, _ := dt.In(berlin)
//
// # Field Codes
//
//	Y   year          h   hour           ms  millisecond of second
//	M   month         m   minute         mc  microsecond of second
//	D   day of month  s   second         ns  nanosecond of second
//
// Codes are matched longest first, so "ms=5" sets the millisecond and is
// never read as minute followed by a stray "s=5".
//
// # Modify Patterns
//
// A pattern is a ':'-separated list of segments, each a field code, an
// operator and an unsigned amount:
//
//	+  add the amount
//	-  subtract the amount
//	=  set the field to the amount
//
// Example: "Y+1:M-2:D=3:h+4:m-5:s=6:ms=7" turns 2017-05-30T14:00:23.439 into
// 2018-03-03T17:55:06.007.
//
//	v, err := timex.Modify(dt, "D+1:h=9")
//
// Adding months or years clamps the day of month (Jan 31 + 1 month is the
// last day of February). Adding days moves the wall-clock date, adding clock
// fields moves the instant. Setting an out-of-range value carries into the
// next larger field (h=25 is 01:00 of the next day); a day of 1..31 beyond
// the month end clamps (D=31 in February is the last day of February).
//
// # Components and Differences
//
//	month, _ := timex.Extract(dt, timex.FieldMonth)  // 5
//	days, _ := timex.DiffCode(later, earlier, "D")
//
// Differences are signed whole units truncated toward zero and always
// antisymmetric.
//
// # Business Days
//
// AdjustToBusinessDay walks from the original value to the modified one and
// pushes the modified value one day further for every weekend day it
// crosses. Tuesday 2017-05-30 plus four days lands on Saturday; with the walk
// it lands on Monday 2017-06-05. BusinessCalendar adds holidays to the walk.
// RollToBusinessDay only moves a weekend landing day.
//
// # Formats
//
// Format and Parse take patterns such as "yyyy-MM-dd HH:mm:ss.SSS".
// DetectFormat infers one of eight ISO-like patterns from the input length
// (4, 7, 10, 13, 16, 19, 23 and 29 characters).
//
// # Errors
//
// Failures carry the code of one of the Err* sentinels and match them with
// errors.Is.
package timex
