// File: business.go
// Title: Business Days
// Description: Weekend sets, holiday sets and the business-day walk that
//              pushes a modified value past every non-business day crossed
//              on the way from the original value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Business day configuration with weekend days and holidays
// - 2026-09-14 v0.2.0: Weekend bitmask with validation, walk along the path of
//                       modification, landing-day roll

package timex

import (
	"sort"
	"strings"
	"time"
)

// WeekendSet is an immutable set of weekdays treated as non-business days
type WeekendSet uint8

const allDays = WeekendSet(1<<7 - 1)

// DefaultWeekends holds Saturday and Sunday
const DefaultWeekends = WeekendSet(1<<time.Saturday | 1<<time.Sunday)

// NewWeekendSet builds a weekend set. A set covering all seven days is
// rejected because no business day would remain.
func NewWeekendSet(days ...time.Weekday) (WeekendSet, error) {
	var w WeekendSet
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return 0, newError(ErrInvalidWeekendSet, "NewWeekendSet", "invalid weekday").
				WithDetail("weekday", int(d))
		}
		w |= 1 << d
	}
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return w, nil
}

// ParseWeekends builds a weekend set from English weekday names, case
// insensitive. No names yield DefaultWeekends.
func ParseWeekends(names ...string) (WeekendSet, error) {
	if len(names) == 0 {
		return DefaultWeekends, nil
	}

	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		d, ok := parseWeekday(name)
		if !ok {
			return 0, newError(ErrInvalidWeekendSet, "ParseWeekends", "unknown weekday: "+name).
				WithDetail("weekday", name)
		}
		days = append(days, d)
	}
	return NewWeekendSet(days...)
}

func parseWeekday(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, true
		}
	}
	return 0, false
}

// Validate reports ErrInvalidWeekendSet for a set that covers every day
func (w WeekendSet) Validate() error {
	if w&allDays == allDays {
		return newError(ErrInvalidWeekendSet, "Validate", "weekend set covers all seven days")
	}
	return nil
}

// Contains reports whether d is a weekend day
func (w WeekendSet) Contains(d time.Weekday) bool {
	return w&(1<<d) != 0
}

// Days returns the weekend days from Sunday to Saturday
func (w WeekendSet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// String returns the upper-case day names separated by commas
func (w WeekendSet) String() string {
	days := w.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = strings.ToUpper(d.String())
	}
	return strings.Join(names, ",")
}

// HolidaySet is an immutable set of calendar dates
type HolidaySet struct {
	days map[int64]struct{}
}

// NewHolidaySet builds a holiday set from dates. Values with a time of day
// contribute their wall-clock date.
func NewHolidaySet(dates ...Temporal) HolidaySet {
	set := HolidaySet{days: make(map[int64]struct{}, len(dates))}
	for _, d := range dates {
		if d.HasDate() {
			set.days[wallOf(d.t).day] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the wall-clock date of v is a holiday
func (h HolidaySet) Contains(v Temporal) bool {
	if len(h.days) == 0 || !v.HasDate() {
		return false
	}
	_, ok := h.days[wallOf(v.t).day]
	return ok
}

// Len returns the number of holidays
func (h HolidaySet) Len() int {
	return len(h.days)
}

// Dates returns the holidays in ascending order
func (h HolidaySet) Dates() []Temporal {
	keys := make([]int64, 0, len(h.days))
	for k := range h.days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	dates := make([]Temporal, len(keys))
	for i, k := range keys {
		dates[i] = Temporal{t: time.Unix(k*secondsPerDay, 0).UTC(), kind: KindDate}
	}
	return dates
}

// BusinessCalendar decides which days are business days
type BusinessCalendar struct {
	Weekends WeekendSet
	Holidays HolidaySet
}

// DefaultCalendar returns a calendar with Saturday and Sunday as weekends
// and no holidays
func DefaultCalendar() BusinessCalendar {
	return BusinessCalendar{Weekends: DefaultWeekends}
}

// IsBusinessDay reports whether the wall-clock date of v is neither a
// weekend day nor a holiday
func (c BusinessCalendar) IsBusinessDay(v Temporal) bool {
	if !v.HasDate() {
		return false
	}
	return !c.Weekends.Contains(v.t.Weekday()) && !c.Holidays.Contains(v)
}

// Adjust walks a cursor from original towards modified one day at a time,
// inclusive of modified's date. Every non-business cursor day pushes
// modified one more day in the direction of the walk.
func (c BusinessCalendar) Adjust(original, modified Temporal) (Temporal, error) {
	if err := c.Weekends.Validate(); err != nil {
		return Temporal{}, err
	}
	if !original.HasDate() || !modified.HasDate() {
		return Temporal{}, newError(ErrUnsupportedField, "Adjust", "business days need a date").
			WithDetail("original", original.kind.String()).
			WithDetail("modified", modified.kind.String())
	}

	dir := 1
	if modified.Before(original) {
		dir = -1
	}

	after := modified.t
	iter := original.t
	for {
		ic, ac := wallOf(iter).day, wallOf(after).day
		if (dir > 0 && ic > ac) || (dir < 0 && ic < ac) {
			break
		}
		if !c.IsBusinessDay(Temporal{t: iter, kind: original.kind}) {
			after = after.AddDate(0, 0, dir)
		}
		iter = iter.AddDate(0, 0, dir)
	}

	return Temporal{t: after, kind: modified.kind}, nil
}

// AdjustToBusinessDay runs the business-day walk with weekends only
func AdjustToBusinessDay(original, modified Temporal, weekends WeekendSet) (Temporal, error) {
	return BusinessCalendar{Weekends: weekends}.Adjust(original, modified)
}

// RollToBusinessDay moves modified off a weekend day, stepping in the
// direction from original to modified. Only the landing day is checked;
// weekend days crossed on the way are not counted.
func RollToBusinessDay(original, modified Temporal, weekends WeekendSet) (Temporal, error) {
	if err := weekends.Validate(); err != nil {
		return Temporal{}, err
	}
	if !modified.HasDate() {
		return Temporal{}, newError(ErrUnsupportedField, "RollToBusinessDay", "business days need a date").
			WithDetail("modified", modified.kind.String())
	}

	dir := 1
	if modified.Before(original) {
		dir = -1
	}

	t := modified.t
	for weekends.Contains(t.Weekday()) {
		t = t.AddDate(0, 0, dir)
	}
	return Temporal{t: t, kind: modified.kind}, nil
}

// CountBusinessDays returns the number of business days from start to end,
// both inclusive. The result is negative when end lies before start.
func (c BusinessCalendar) CountBusinessDays(start, end Temporal) (int64, error) {
	if !start.HasDate() || !end.HasDate() {
		return 0, newError(ErrUnsupportedField, "CountBusinessDays", "business days need a date")
	}
	if err := c.Weekends.Validate(); err != nil {
		return 0, err
	}
	if end.Before(start) {
		n, err := c.CountBusinessDays(end, start)
		return -n, err
	}

	var count int64
	last := wallOf(end.t).day
	for t := start.t; wallOf(t).day <= last; t = t.AddDate(0, 0, 1) {
		if c.IsBusinessDay(Temporal{t: t, kind: start.kind}) {
			count++
		}
	}
	return count, nil
}
