// File: zone.go
// Title: Zone Resolution
// Description: Resolves zone ids (region ids, UTC aliases and fixed offsets)
//              to locations of the Go runtime. Resolved locations are cached.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Cached timezone lookup
// - 2026-09-14 v0.2.0: Offset ids, UTC/GMT prefixes, error codes

package timex

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// MaxOffsetSeconds is the largest supported fixed offset (18 hours)
const MaxOffsetSeconds = 18 * 3600

// Location cache, keyed by the zone id as given
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// getCachedLocation returns a cached location or resolves and caches it
func getCachedLocation(id string, resolve func(string) (*time.Location, error)) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[id]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := resolve(id)
	if err != nil {
		return nil, err
	}

	timezoneMu.Lock()
	if cached, exists := timezoneCache[id]; exists {
		loc = cached
	} else {
		timezoneCache[id] = loc
	}
	timezoneMu.Unlock()

	return loc, nil
}

// LoadZone resolves a zone id. Accepted forms:
//
//	Europe/Berlin          region id from the runtime zoneinfo
//	Z, UTC, GMT, UT        UTC
//	+h +hh +hh:mm +hhmm    fixed offset, also with seconds
//	UTC+3, GMT-05:30       prefixed fixed offset
//
// Offsets are limited to ±18:00. "Local" and the empty id are rejected.
func LoadZone(id string) (*time.Location, error) {
	return getCachedLocation(id, resolveZone)
}

func resolveZone(id string) (*time.Location, error) {
	switch id {
	case "":
		return nil, newError(ErrInvalidTimeZone, "LoadZone", "empty zone id")
	case "Z", "UTC", "GMT", "UT":
		return time.UTC, nil
	case "Local":
		return nil, newError(ErrInvalidTimeZone, "LoadZone", "the local zone is not a valid zone id").
			WithDetail("zone", id)
	}

	if id[0] == '+' || id[0] == '-' {
		return parseOffsetZone(id, id)
	}
	for _, prefix := range []string{"UTC", "GMT", "UT"} {
		if rest, ok := strings.CutPrefix(id, prefix); ok && rest != "" && (rest[0] == '+' || rest[0] == '-') {
			return parseOffsetZone(id, rest)
		}
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, newError(ErrInvalidTimeZone, "LoadZone", "unknown zone id: "+id).
			WithDetail("zone", id).
			WithCause(err)
	}
	return loc, nil
}

// parseOffsetZone parses ±h, ±hh, ±hh:mm, ±hhmm, ±hh:mm:ss or ±hhmmss
func parseOffsetZone(id, offset string) (*time.Location, error) {
	invalid := func(reason string) error {
		return newError(ErrInvalidTimeZone, "LoadZone", "invalid offset id "+id+": "+reason).
			WithDetail("zone", id)
	}

	sign := 1
	if offset[0] == '-' {
		sign = -1
	}
	body := offset[1:]

	var parts []string
	switch len(body) {
	case 1, 2:
		parts = []string{body}
	case 4:
		parts = []string{body[:2], body[2:]}
	case 5:
		if body[2] != ':' {
			return nil, invalid("expected hh:mm")
		}
		parts = []string{body[:2], body[3:]}
	case 6:
		parts = []string{body[:2], body[2:4], body[4:]}
	case 8:
		if body[2] != ':' || body[5] != ':' {
			return nil, invalid("expected hh:mm:ss")
		}
		parts = []string{body[:2], body[3:5], body[6:]}
	default:
		return nil, invalid("unsupported length")
	}

	values := [3]int{}
	for i, p := range parts {
		n := 0
		for j := 0; j < len(p); j++ {
			if p[j] < '0' || p[j] > '9' {
				return nil, invalid("not a number")
			}
			n = n*10 + int(p[j]-'0')
		}
		values[i] = n
	}

	hours, minutes, seconds := values[0], values[1], values[2]
	if minutes > 59 || seconds > 59 {
		return nil, invalid("minutes and seconds must be below 60")
	}
	total := hours*3600 + minutes*60 + seconds
	if total > MaxOffsetSeconds {
		return nil, invalid("offset exceeds 18 hours")
	}
	if total == 0 {
		return time.UTC, nil
	}

	return time.FixedZone(offsetName(sign*total), sign*total), nil
}

// offsetName formats an offset as +hh:mm or +hh:mm:ss
func offsetName(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

// isOffsetName reports whether a location name is a fixed offset name
func isOffsetName(name string) bool {
	return len(name) > 1 && (name[0] == '+' || name[0] == '-')
}

// ConvertZone returns the instant of v in the zone with the given id
func ConvertZone(v Temporal, id string) (Temporal, error) {
	loc, err := LoadZone(id)
	if err != nil {
		return Temporal{}, err
	}
	return v.In(loc)
}
