// File: format.go
// Title: Format Patterns and Auto-Detection
// Description: Translates date/time format patterns (yyyy-MM-dd HH:mm:ss.SSS)
//              into Go layouts, formats and parses Temporal values with them,
//              and detects the ISO-like format of an input from its length.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Parsing and formatting with predefined layouts
// - 2026-09-14 v0.2.0: Pattern translator, length-based detection

package timex

import (
	"strings"
	"sync"
	"time"
)

// Length-detected formats, ordered by input length
var detectTable = []struct {
	length  int
	pattern string
}{
	{4, "yyyy"},
	{7, "yyyy-MM"},
	{10, "yyyy-MM-dd"},
	{13, "yyyy-MM-dd HH"},
	{16, "yyyy-MM-dd HH:mm"},
	{19, "yyyy-MM-dd HH:mm:ss"},
	{23, "yyyy-MM-dd HH:mm:ss.SSS"},
	{29, "yyyy-MM-dd HH:mm:ss.SSS Z"},
}

// DetectFormat returns the format pattern implied by the length of source
func DetectFormat(source string) (string, error) {
	for _, entry := range detectTable {
		if entry.length == len(source) {
			return entry.pattern, nil
		}
	}
	return "", newError(ErrUnrecognizedFormat, "DetectFormat", "unsupported date format: "+source).
		WithDetail("source", source).
		WithDetail("length", len(source))
}

// DetectedFormats returns the supported input lengths and their patterns
func DetectedFormats() map[int]string {
	out := make(map[int]string, len(detectTable))
	for _, entry := range detectTable {
		out[entry.length] = entry.pattern
	}
	return out
}

// ParseAuto detects the format of source and parses it into a date-time
func ParseAuto(source string) (Temporal, error) {
	pattern, err := DetectFormat(source)
	if err != nil {
		return Temporal{}, err
	}
	v, err := Parse(source, pattern)
	if err != nil {
		return Temporal{}, err
	}
	if v.kind == KindDate {
		return v.DateTime()
	}
	return v, nil
}

// ===============================
// Pattern translation
// ===============================

// layout is a translated format pattern
type layout struct {
	goLayout string
	hasDate  bool
	hasTime  bool
	hasZone  bool
}

// maxCachedLayouts bounds the layout cache; patterns beyond it are
// translated on every call
const maxCachedLayouts = 256

// layoutCache holds translated patterns. Only valid patterns are stored.
var (
	layoutCache = make(map[string]layout)
	layoutMu    sync.RWMutex
)

func compileLayout(pattern string) (layout, error) {
	layoutMu.RLock()
	l, ok := layoutCache[pattern]
	layoutMu.RUnlock()
	if ok {
		return l, nil
	}

	l, err := translatePattern(pattern)
	if err != nil {
		return layout{}, err
	}

	layoutMu.Lock()
	if len(layoutCache) < maxCachedLayouts {
		layoutCache[pattern] = l
	}
	layoutMu.Unlock()
	return l, nil
}

// Go layout words that must not appear in literal text
var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm", "_"}

func invalidPattern(pattern, reason string) error {
	return newError(ErrInvalidFormatPattern, "Format", "invalid format pattern "+pattern+": "+reason).
		WithDetail("pattern", pattern)
}

// translatePattern turns a pattern into a Go layout. Runs of one letter
// form a field; text in single quotes is literal, '' is a quote.
func translatePattern(pattern string) (layout, error) {
	if pattern == "" {
		return layout{}, invalidPattern(pattern, "empty pattern")
	}

	var (
		out     strings.Builder
		literal strings.Builder
		l       layout
	)

	flushLiteral := func() error {
		text := literal.String()
		literal.Reset()
		for _, c := range text {
			if c >= '0' && c <= '9' {
				return invalidPattern(pattern, "digits in literal text")
			}
		}
		for _, word := range reservedLiterals {
			if strings.Contains(text, word) {
				return invalidPattern(pattern, "literal text "+word+" cannot be expressed")
			}
		}
		out.WriteString(text)
		return nil
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			j, closed := i+1, false
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						literal.WriteByte('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				literal.WriteByte(pattern[j])
				j++
			}
			if !closed {
				return layout{}, invalidPattern(pattern, "unterminated quote")
			}
			i = j + 1
			continue
		}

		if !isLetter(c) {
			if c == '[' || c == ']' || c == '{' || c == '}' || c == '#' {
				return layout{}, invalidPattern(pattern, "optional sections are not supported")
			}
			literal.WriteByte(c)
			i++
			continue
		}

		n := 1
		for i+n < len(pattern) && pattern[i+n] == c {
			n++
		}

		// fraction of second consumes the preceding '.' or ','
		if c == 'S' {
			text := literal.String()
			if text == "" || (text[len(text)-1] != '.' && text[len(text)-1] != ',') {
				return layout{}, invalidPattern(pattern, "fraction of second must follow '.' or ','")
			}
			if n > 9 {
				return layout{}, invalidPattern(pattern, "at most nine fraction digits")
			}
			sep := text[len(text)-1]
			literal.Reset()
			literal.WriteString(text[:len(text)-1])
			if err := flushLiteral(); err != nil {
				return layout{}, err
			}
			out.WriteByte(sep)
			out.WriteString(strings.Repeat("0", n))
			l.hasTime = true
			i += n
			continue
		}

		token, kind, ok := letterToken(c, n)
		if !ok {
			return layout{}, invalidPattern(pattern, "unsupported field "+strings.Repeat(string(c), n))
		}
		if err := flushLiteral(); err != nil {
			return layout{}, err
		}
		out.WriteString(token)
		switch kind {
		case 'd':
			l.hasDate = true
		case 't':
			l.hasTime = true
		case 'z':
			l.hasZone = true
		}
		i += n
	}

	if err := flushLiteral(); err != nil {
		return layout{}, err
	}

	l.goLayout = out.String()
	return l, nil
}

// letterToken maps a run of n letters c to a Go layout token and its class:
// 'd' date, 't' time of day, 'z' zone
func letterToken(c byte, n int) (string, byte, bool) {
	switch c {
	case 'y', 'u':
		if n == 2 {
			return "06", 'd', true
		}
		return "2006", 'd', true
	case 'M', 'L':
		switch n {
		case 1:
			return "1", 'd', true
		case 2:
			return "01", 'd', true
		case 3:
			return "Jan", 'd', true
		case 4:
			return "January", 'd', true
		}
	case 'd':
		switch n {
		case 1:
			return "2", 'd', true
		case 2:
			return "02", 'd', true
		}
	case 'D':
		if n == 3 {
			return "002", 'd', true
		}
	case 'E':
		switch {
		case n <= 3:
			return "Mon", 'd', true
		case n == 4:
			return "Monday", 'd', true
		}
	case 'a':
		if n == 1 {
			return "PM", 't', true
		}
	case 'H':
		if n <= 2 {
			return "15", 't', true
		}
	case 'h':
		switch n {
		case 1:
			return "3", 't', true
		case 2:
			return "03", 't', true
		}
	case 'm':
		switch n {
		case 1:
			return "4", 't', true
		case 2:
			return "04", 't', true
		}
	case 's':
		switch n {
		case 1:
			return "5", 't', true
		case 2:
			return "05", 't', true
		}
	case 'Z':
		switch {
		case n <= 3:
			return "-0700", 'z', true
		case n == 5:
			return "Z07:00", 'z', true
		}
	case 'X':
		if n <= 5 {
			return [...]string{"Z07", "Z0700", "Z07:00", "Z070000", "Z07:00:00"}[n-1], 'z', true
		}
	case 'x':
		if n <= 5 {
			return [...]string{"-07", "-0700", "-07:00", "-070000", "-07:00:00"}[n-1], 'z', true
		}
	case 'z':
		if n <= 3 {
			return "MST", 'z', true
		}
	}
	return "", 0, false
}

// ===============================
// Formatting and parsing
// ===============================

// Format renders v with a format pattern. The pattern may only use fields
// the value carries; zone fields need a date-time (rendered as UTC when the
// value has no zone).
func Format(v Temporal, pattern string) (string, error) {
	l, err := compileLayout(pattern)
	if err != nil {
		return "", err
	}

	instant := v.kind == KindDateTime || v.kind == KindZoned
	if (l.hasDate && !v.HasDate()) || (l.hasTime && !v.HasTime()) || (l.hasZone && !instant) {
		return "", newError(ErrUnsupportedField, "Format", "pattern "+pattern+" needs fields a "+v.kind.String()+" does not have").
			WithDetail("pattern", pattern).
			WithDetail("kind", v.kind.String())
	}

	return v.t.Format(l.goLayout), nil
}

// Parse reads source with a format pattern. The kind of the result follows
// the pattern's fields: date only gives a date, time only a time of day,
// both a date-time. A parsed offset normalizes the result to a UTC
// date-time. Parsing is all or nothing.
func Parse(source, pattern string) (Temporal, error) {
	l, err := compileLayout(pattern)
	if err != nil {
		return Temporal{}, err
	}

	t, err := time.Parse(l.goLayout, source)
	if err != nil {
		return Temporal{}, newError(ErrParse, "Parse", "text "+source+" does not match pattern "+pattern).
			WithDetail("source", source).
			WithDetail("pattern", pattern).
			WithCause(err)
	}

	switch {
	case l.hasZone:
		return UTCDateTimeOf(t), nil
	case l.hasDate && l.hasTime:
		return DateTimeOf(t), nil
	case l.hasTime:
		return timeOfDay(t), nil
	default:
		return DateOf(t), nil
	}
}

// ParseInZone reads source with a format pattern and interprets a wall
// clock without offset in loc. The result is a UTC date-time.
func ParseInZone(source, pattern string, loc *time.Location) (Temporal, error) {
	v, err := Parse(source, pattern)
	if err != nil {
		return Temporal{}, err
	}
	l, _ := compileLayout(pattern)
	if l.hasZone || !v.HasDate() {
		return v, nil
	}
	zoned, err := v.AtZone(loc)
	if err != nil {
		return Temporal{}, err
	}
	return zoned.UTC(), nil
}
