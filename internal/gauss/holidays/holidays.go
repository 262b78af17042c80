package holidays

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/timex"
)

// defaultMaxOccurrences caps the expansion of a single recurring event
const defaultMaxOccurrences = 5000

// Event is a holiday definition read from a VEVENT
type Event struct {
	UID     string
	Summary string

	// Start is the first day of the holiday, Days its length (at least 1)
	Start timex.Temporal
	Days  int

	// Rule is the raw RRULE value; empty for a one-off holiday
	Rule    string
	ExDates []timex.Temporal
}

// Holiday is one expanded holiday date
type Holiday struct {
	Date timex.Temporal
	Name string
}

// Options controls parsing and expansion
type Options struct {
	// From and To bound the expanded dates, both inclusive
	From timex.Temporal
	To   timex.Temporal

	// MaxOccurrences caps each recurring event; zero means 5000
	MaxOccurrences int

	Logger *mdwlog.Logger
}

// Calendar is an expanded, immutable holiday calendar
type Calendar struct {
	holidays []Holiday
	set      timex.HolidaySet
}

// Parse reads the VEVENTs of an iCalendar payload. Events without a usable
// DTSTART are logged and skipped.
func Parse(body []byte, logger *mdwlog.Logger) ([]Event, error) {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	if len(body) == 0 {
		return nil, mdwerror.New("empty iCalendar payload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("holidays.Parse")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot parse iCalendar payload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("holidays.Parse")
	}

	events := make([]Event, 0)
	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve)
		if perr != nil {
			logger.WarnWithErr("skipping holiday event", perr, mdwlog.Field("uid", ev.UID))
			continue
		}
		events = append(events, ev)
	}

	logger.Debug("holiday events parsed", mdwlog.Field("event_count", len(events)))
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (Event, error) {
	var ev Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return ev, mdwerror.New("missing DTSTART").WithCode(mdwerror.CodeConfigError)
	}
	start, err := parseICSDate(startProp.Value)
	if err != nil {
		return ev, err
	}
	ev.Start = start
	ev.Days = 1

	if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil && isDateOnly(endProp.Value) {
		if end, err := parseICSDate(endProp.Value); err == nil {
			if days, _ := timex.Diff(end, start, timex.FieldDay); days > 1 {
				ev.Days = int(days)
			}
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		ev.Rule = strings.TrimSpace(p.Value)
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if d, err := parseICSDate(part); err == nil {
				ev.ExDates = append(ev.ExDates, d)
			}
		}
	}

	return ev, nil
}

// parseICSDate reads the calendar date of a DATE or DATE-TIME value
func parseICSDate(v string) (timex.Temporal, error) {
	v = strings.TrimSpace(v)
	if len(v) < 8 {
		return timex.Temporal{}, mdwerror.New("invalid iCalendar date: " + v).WithCode(mdwerror.CodeConfigError)
	}
	t, err := time.Parse("20060102", v[:8])
	if err != nil {
		return timex.Temporal{}, mdwerror.Wrap(err, "invalid iCalendar date: "+v).WithCode(mdwerror.CodeConfigError)
	}
	return timex.DateOf(t), nil
}

func isDateOnly(v string) bool {
	return !strings.Contains(v, "T")
}

// ParseFile reads the VEVENTs of an iCalendar file
func ParseFile(path string, logger *mdwlog.Logger) ([]Event, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot read holiday file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("holidays.ParseFile").
			WithDetail("path", path)
	}
	return Parse(body, logger)
}

// Expand turns events into holiday dates within opts.From..opts.To. Events
// whose RRULE cannot be parsed are logged and skipped.
func Expand(events []Event, opts Options) (*Calendar, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	if opts.MaxOccurrences <= 0 {
		opts.MaxOccurrences = defaultMaxOccurrences
	}
	if !opts.From.HasDate() || !opts.To.HasDate() || opts.To.Before(opts.From) {
		return nil, mdwerror.New("holiday range end lies before its start").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("holidays.Expand").
			WithDetail("from", opts.From.String()).
			WithDetail("to", opts.To.String())
	}

	from, _ := opts.From.Date()
	to, _ := opts.To.Date()

	var holidays []Holiday
	for _, ev := range events {
		starts, err := occurrences(ev, from, to, opts)
		if err != nil {
			opts.Logger.WarnWithErr("skipping holiday rule", err,
				mdwlog.Field("uid", ev.UID).Merge(mdwlog.Field("rrule", ev.Rule)))
			continue
		}
		for _, start := range starts {
			for i := 0; i < ev.Days; i++ {
				d := timex.DateOf(start.Time().AddDate(0, 0, i))
				if d.Before(from) || d.After(to) {
					continue
				}
				holidays = append(holidays, Holiday{Date: d, Name: ev.Summary})
			}
		}
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	dates := make([]timex.Temporal, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}

	opts.Logger.Debug("holidays expanded", mdwlog.Fields{
		"from":          from.String(),
		"to":            to.String(),
		"holiday_count": len(holidays),
	})

	return &Calendar{holidays: holidays, set: timex.NewHolidaySet(dates...)}, nil
}

// occurrences returns the start dates of ev whose holiday overlaps from..to
func occurrences(ev Event, from, to timex.Temporal, opts Options) ([]timex.Temporal, error) {
	// a multi-day holiday starting before from may still reach into the range
	lookBack := from.Time().AddDate(0, 0, -(ev.Days - 1))

	if ev.Rule == "" {
		start := ev.Start.Time()
		if start.Before(lookBack) || start.After(to.Time()) || excluded(ev, ev.Start) {
			return nil, nil
		}
		return []timex.Temporal{ev.Start}, nil
	}

	r, err := rrule.StrToRRule(ev.Rule)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid RRULE").WithCode(mdwerror.CodeConfigError)
	}
	r.DTStart(ev.Start.Time())

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.Time())
	}

	times := set.Between(lookBack, to.Time(), true)
	if len(times) > opts.MaxOccurrences {
		opts.Logger.Warn("holiday occurrences truncated", mdwlog.Fields{
			"uid": ev.UID,
			"cap": opts.MaxOccurrences,
		})
		times = times[:opts.MaxOccurrences]
	}

	out := make([]timex.Temporal, len(times))
	for i, t := range times {
		out[i] = timex.DateOf(t)
	}
	return out, nil
}

func excluded(ev Event, d timex.Temporal) bool {
	for _, ex := range ev.ExDates {
		if ex.Equal(d) {
			return true
		}
	}
	return false
}

// Load parses an iCalendar file and expands it within opts.From..opts.To
func Load(path string, opts Options) (*Calendar, error) {
	events, err := ParseFile(path, opts.Logger)
	if err != nil {
		return nil, err
	}
	return Expand(events, opts)
}

// YearRange returns January 1 of year-years through December 31 of
// year+years
func YearRange(year, years int) (from, to timex.Temporal) {
	if years < 0 {
		years = 0
	}
	return timex.NewDate(year-years, time.January, 1), timex.NewDate(year+years, time.December, 31)
}

// Set returns the holiday dates as a set for a business calendar
func (c *Calendar) Set() timex.HolidaySet {
	if c == nil {
		return timex.HolidaySet{}
	}
	return c.set
}

// Holidays returns the expanded holidays in date order
func (c *Calendar) Holidays() []Holiday {
	if c == nil {
		return nil
	}
	out := make([]Holiday, len(c.holidays))
	copy(out, c.holidays)
	return out
}

// Lookup returns the names of the holidays on the date of v
func (c *Calendar) Lookup(v timex.Temporal) []string {
	if c == nil || !c.set.Contains(v) {
		return nil
	}
	d, _ := v.Date()
	var names []string
	for _, h := range c.holidays {
		if h.Date.Equal(d) {
			names = append(names, h.Name)
		}
	}
	return names
}
