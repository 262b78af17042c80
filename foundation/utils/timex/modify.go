// File: modify.go
// Title: Modify Patterns
// Description: Parses compact modify patterns such as "Y+1:M-2:D=3:ms=7"
//              into field operations and applies them to Temporal values.
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
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

// Operator is the action of a modify operation
type Operator byte

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpSet      Operator = '='
)

// String returns the operator symbol
func (o Operator) String() string {
	return string(o)
}

// ModifyOp is one parsed pattern segment. Amount is never negative.
type ModifyOp struct {
	Field    Field
	Operator Operator
	Amount   int64
}

// String returns the segment form of the operation ("ms=7")
func (op ModifyOp) String() string {
	return op.Field.Code() + op.Operator.String() + strconv.FormatInt(op.Amount, 10)
}

// largest day and second spans that keep a result inside the year range
const (
	maxSpanDays    = int64(MaxYear-MinYear+1) * 366
	maxSpanSeconds = maxSpanDays * secondsPerDay
	maxSpanMonths  = int64(MaxYear-MinYear+1) * 12
)

// ===============================
// Parsing
// ===============================

// ParseModifyPattern parses a pattern of ':'-separated segments, each a
// field code, an operator (+ - =) and an unsigned decimal amount. Field
// codes are matched longest first. Blanks may surround segments and the
// operator ("D + 1"); a blank inside a field code or an amount is an
// error. A blank pattern yields no operations.
func ParseModifyPattern(pattern string) ([]ModifyOp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, nil
	}

	segments := strings.Split(pattern, ":")
	ops := make([]ModifyOp, 0, len(segments))

	for i, raw := range segments {
		op, err := parseSegment(strings.TrimSpace(raw))
		if err != nil {
			return nil, err.WithDetail("pattern", pattern).WithDetail("segment", i+1)
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func parseSegment(seg string) (ModifyOp, *mdwerror.Error) {
	if seg == "" {
		return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern", "empty segment")
	}

	field, ok := matchFieldPrefix(seg)
	if !ok {
		if code := leadingLetters(seg); code != "" {
			return ModifyOp{}, newError(ErrUnknownFieldCode, "ParseModifyPattern", "unknown field code: "+code).
				WithDetail("code", code)
		}
		return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern",
			"segment "+strconv.Quote(seg)+" does not start with a field code")
	}

	after := seg[len(field.Code()):]
	rest := strings.TrimLeft(after, " \t")
	if rest == "" {
		return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern",
			"segment "+strconv.Quote(seg)+" has no operator")
	}

	operator := Operator(rest[0])
	switch operator {
	case OpAdd, OpSubtract, OpSet:
	default:
		if isLetter(rest[0]) && len(rest) == len(after) {
			code := leadingLetters(seg)
			return ModifyOp{}, newError(ErrUnknownFieldCode, "ParseModifyPattern", "unknown field code: "+code).
				WithDetail("code", code)
		}
		return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern",
			"segment "+strconv.Quote(seg)+" has no valid operator")
	}

	digits := strings.TrimLeft(rest[1:], " \t")
	if digits == "" {
		return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern",
			"segment "+strconv.Quote(seg)+" has no amount")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern",
				"amount "+strconv.Quote(digits)+" is not an unsigned integer")
		}
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ModifyOp{}, newError(ErrMalformedPattern, "ParseModifyPattern",
			"amount "+digits+" overflows a 64-bit integer").WithCause(err)
	}

	return ModifyOp{Field: field, Operator: operator, Amount: amount}, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func leadingLetters(s string) string {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return s[:i]
}

// ===============================
// Applying
// ===============================

// Modify parses pattern and applies it to v
func Modify(v Temporal, pattern string) (Temporal, error) {
	ops, err := ParseModifyPattern(pattern)
	if err != nil {
		return Temporal{}, err
	}
	return Apply(v, ops)
}

// Apply folds ops over v from left to right and returns the new value.
// Add and subtract of years and months clamp the day of month; days move the
// wall-clock date; clock fields move the instant. Set assigns the amount and
// carries out-of-range values into the next larger field, except that year
// and month sets clamp the day of month and a day set of 1..31 clamps to the
// month end.
func Apply(v Temporal, ops []ModifyOp) (Temporal, error) {
	for _, op := range ops {
		next, err := applyOp(v, op)
		if err != nil {
			return Temporal{}, err
		}
		v = next
	}
	return v, nil
}

func applyOp(v Temporal, op ModifyOp) (Temporal, error) {
	if !op.Field.Valid() {
		return Temporal{}, newError(ErrUnknownFieldCode, "Apply", "unknown field").
			WithDetail("field", int(op.Field))
	}
	if op.Amount < 0 {
		return Temporal{}, newError(ErrMalformedPattern, "Apply", "negative amount").
			WithDetail("op", op.String())
	}
	if !v.Supports(op.Field) {
		return Temporal{}, newError(ErrUnsupportedField, "Apply",
			"a "+v.kind.String()+" has no "+op.Field.Name()).
			WithDetail("op", op.String()).
			WithDetail("kind", v.kind.String())
	}

	var (
		t   time.Time
		err error
	)
	switch op.Operator {
	case OpAdd:
		t, err = addField(v, op, op.Amount)
	case OpSubtract:
		t, err = addField(v, op, -op.Amount)
	case OpSet:
		t, err = setField(v, op)
	default:
		return Temporal{}, newError(ErrMalformedPattern, "Apply", "invalid operator").
			WithDetail("operator", string(op.Operator))
	}
	if err != nil {
		return Temporal{}, err
	}

	return v.with(t, op)
}

// with wraps t into a value of v's kind
func (v Temporal) with(t time.Time, op ModifyOp) (Temporal, error) {
	switch v.kind {
	case KindTime:
		return timeOfDay(t), nil
	case KindDate:
		y, m, d := t.Date()
		t = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if y := t.Year(); y < MinYear || y > MaxYear {
		return Temporal{}, outOfRange("Apply", op)
	}
	return Temporal{t: t, kind: v.kind}, nil
}

func outOfRange(operation string, op ModifyOp) *mdwerror.Error {
	return newError(ErrValueOutOfRange, operation, "result of "+op.String()+" is outside the supported range").
		WithDetail("op", op.String())
}

// addField adds the signed amount n of op's field
func addField(v Temporal, op ModifyOp, n int64) (time.Time, error) {
	f := op.Field
	t := v.t

	switch f {
	case FieldYear:
		if n > maxSpanMonths/12 || n < -maxSpanMonths/12 {
			return time.Time{}, outOfRange("Apply", op)
		}
		return addMonths(t, n*12), nil
	case FieldMonth:
		if n > maxSpanMonths || n < -maxSpanMonths {
			return time.Time{}, outOfRange("Apply", op)
		}
		return addMonths(t, n), nil
	case FieldDay:
		if n > maxSpanDays || n < -maxSpanDays {
			return time.Time{}, outOfRange("Apply", op)
		}
		return t.AddDate(0, 0, int(n)), nil
	}

	if v.kind == KindTime {
		return wrapClock(t, n, f.Unit()), nil
	}
	return addElapsed(t, n, f.Unit(), op)
}

// addMonths moves the wall-clock date by months and clamps the day
func addMonths(t time.Time, months int64) time.Time {
	y, m, d := t.Date()
	total := int64(y)*12 + int64(m-1) + months
	return dateClamped(floorDiv(total, 12), time.Month(floorMod(total, 12)+1), d, t)
}

// dateClamped builds year-month-day on t's clock, clamping day to the month
func dateClamped(year int64, month time.Month, day int, t time.Time) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	h, mi, s := t.Clock()
	return time.Date(int(year), month, day, h, mi, s, t.Nanosecond(), t.Location())
}

func daysIn(year int64, month time.Month) int {
	return time.Date(int(year), month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addElapsed moves the instant by n units
func addElapsed(t time.Time, n int64, unit time.Duration, op ModifyOp) (time.Time, error) {
	u := int64(unit)
	var dsec, dnsec int64

	if u >= nanosPerSecond {
		per := u / nanosPerSecond
		if n > math.MaxInt64/per || n < -math.MaxInt64/per {
			return time.Time{}, outOfRange("Apply", op)
		}
		dsec = n * per
	} else {
		per := nanosPerSecond / u
		dsec = n / per
		dnsec = (n % per) * u
	}

	if dsec > maxSpanSeconds || dsec < -maxSpanSeconds {
		return time.Time{}, outOfRange("Apply", op)
	}

	return time.Unix(t.Unix()+dsec, int64(t.Nanosecond())+dnsec).In(t.Location()), nil
}

// wrapClock moves a time of day by n units around midnight
func wrapClock(t time.Time, n int64, unit time.Duration) time.Time {
	u := int64(unit)
	delta := (n % (nanosPerDay / u)) * u
	nod := floorMod(nanoOfDay(t)+delta, nanosPerDay)
	return time.Unix(0, nod).UTC()
}

func setField(v Temporal, op ModifyOp) (time.Time, error) {
	f, n := op.Field, op.Amount
	t := v.t
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()
	loc := t.Location()

	switch f {
	case FieldYear:
		if n < MinYear || n > MaxYear {
			return time.Time{}, outOfRange("Apply", op)
		}
		return dateClamped(n, m, d, t), nil

	case FieldMonth:
		if n > maxSpanMonths {
			return time.Time{}, outOfRange("Apply", op)
		}
		total := int64(y)*12 + n - 1
		return dateClamped(floorDiv(total, 12), time.Month(floorMod(total, 12)+1), d, t), nil

	case FieldDay:
		if n > maxSpanDays {
			return time.Time{}, outOfRange("Apply", op)
		}
		// in-range days clamp to the month end like Y and M do; only
		// amounts outside 1..31 carry into neighbouring months
		if n >= 1 && n <= 31 {
			return dateClamped(int64(y), m, int(n), t), nil
		}
		return time.Date(y, m, int(n), h, mi, s, ns, loc), nil
	}

	u := int64(f.Unit())
	if n > math.MaxInt64/u || n*u/nanosPerDay > maxSpanDays {
		return time.Time{}, outOfRange("Apply", op)
	}

	switch f {
	case FieldHour:
		h = int(n)
	case FieldMinute:
		mi = int(n)
	case FieldSecond:
		s = int(n)
	default:
		ns = int(n * u)
	}
	return time.Date(y, m, d, h, mi, s, ns, loc), nil
}

func nanoOfDay(t time.Time) int64 {
	h, m, s := t.Clock()
	return (int64(h)*3600+int64(m)*60+int64(s))*nanosPerSecond + int64(t.Nanosecond())
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
