package service

import (
	"sync/atomic"
	"time"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/timex"
	"github.com/msto63/gauss/internal/gauss/holidays"
	"github.com/robfig/cron/v3"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the system time
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Options configures a Service
type Options struct {
	// Calendar used by the business functions. Nil selects Saturday and
	// Sunday as weekends without holidays.
	Calendar *timex.BusinessCalendar

	// Holidays names the holiday dates of Calendar (optional)
	Holidays *holidays.Calendar

	// DefaultZone is used when a ByZoneID function gets an empty zone id
	DefaultZone string

	Clock  Clock
	Logger *mdwlog.Logger
}

// Service is the gauss date/time facade. It is safe for concurrent use.
type Service struct {
	calendar    timex.BusinessCalendar
	holidays    *holidays.Calendar
	defaultZone string
	clock       Clock
	logger      *mdwlog.Logger

	// last order id offset handed out by GenerateClOrdID
	clOrdSeq atomic.Int64
}

// New creates a Service. The weekend set and the default zone are
// validated up front.
func New(opts Options) (*Service, error) {
	s := &Service{
		calendar:    timex.DefaultCalendar(),
		holidays:    opts.Holidays,
		defaultZone: opts.DefaultZone,
		clock:       opts.Clock,
		logger:      opts.Logger,
	}
	if opts.Calendar != nil {
		s.calendar = *opts.Calendar
	}
	if s.clock == nil {
		s.clock = SystemClock
	}
	if s.logger == nil {
		s.logger = mdwlog.Discard()
	}

	if err := s.calendar.Weekends.Validate(); err != nil {
		return nil, err
	}
	if s.defaultZone != "" {
		if _, err := timex.LoadZone(s.defaultZone); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("service created", mdwlog.Fields{
		"weekends":    s.calendar.Weekends.String(),
		"holidays":    s.calendar.Holidays.Len(),
		"defaultZone": s.defaultZone,
	})
	return s, nil
}

// Calendar returns the configured business calendar
func (s *Service) Calendar() timex.BusinessCalendar {
	return s.calendar
}

// ===============================
// Current date and time
// ===============================

// Now returns the current UTC date-time
func (s *Service) Now() timex.Temporal {
	return timex.UTCDateTimeOf(s.clock.Now())
}

// Today returns the current UTC date
func (s *Service) Today() timex.Temporal {
	return timex.DateOf(s.clock.Now().UTC())
}

// CurrentTime returns the current UTC time of day
func (s *Service) CurrentTime() timex.Temporal {
	return timex.TimeOf(s.clock.Now().UTC())
}

// GetDateTime modifies the current UTC date-time with pattern
func (s *Service) GetDateTime(pattern string) (timex.Temporal, error) {
	return s.ModifyDateTime(s.Now(), pattern)
}

// GetDate modifies the current UTC date-time with pattern and returns its date
func (s *Service) GetDate(pattern string) (timex.Temporal, error) {
	v, err := s.GetDateTime(pattern)
	if err != nil {
		return timex.Temporal{}, err
	}
	return v.Date()
}

// GetTime modifies the current UTC date-time with pattern and returns its
// time of day
func (s *Service) GetTime(pattern string) (timex.Temporal, error) {
	v, err := s.GetDateTime(pattern)
	if err != nil {
		return timex.Temporal{}, err
	}
	return v.TimeOfDay()
}

// GetDateTimeSkipWeekends is GetDateTime followed by the weekend roll when
// skip is set
func (s *Service) GetDateTimeSkipWeekends(pattern string, skip bool) (timex.Temporal, error) {
	return s.ModifyDateTimeSkipWeekends(s.Now(), pattern, skip)
}

// GetDateTimeByZoneID modifies the current instant on the wall clock of
// zone and returns the result as a UTC date-time
func (s *Service) GetDateTimeByZoneID(pattern, zone string) (timex.Temporal, error) {
	return s.ModifyDateTimeByZoneID(s.Now(), pattern, zone)
}

// GetDateTimeByZoneIDSkipWeekends is GetDateTimeByZoneID with the weekend
// roll applied on the zone's wall clock when skip is set
func (s *Service) GetDateTimeByZoneIDSkipWeekends(pattern string, skip bool, zone string) (timex.Temporal, error) {
	return s.ModifyDateTimeByZoneIDSkipWeekends(s.Now(), pattern, skip, zone)
}

// GetBusinessDateTime modifies the current UTC date-time and extends the
// result past every non-business day crossed
func (s *Service) GetBusinessDateTime(pattern string, weekends ...string) (timex.Temporal, error) {
	return s.ModifyBusinessDateTime(s.Now(), pattern, weekends...)
}

// GetBusinessDateTimeByZoneID is GetBusinessDateTime evaluated on the wall
// clock of zone
func (s *Service) GetBusinessDateTimeByZoneID(pattern, zone string, weekends ...string) (timex.Temporal, error) {
	return s.ModifyBusinessDateTimeByZoneID(s.Now(), pattern, zone, weekends...)
}

// UTCTimeNanosecond returns the current instant in Unix nanoseconds
func (s *Service) UTCTimeNanosecond() int64 {
	return s.clock.Now().UnixNano()
}

// ===============================
// Modification
// ===============================

// ModifyDateTime applies pattern to v
func (s *Service) ModifyDateTime(v timex.Temporal, pattern string) (timex.Temporal, error) {
	res, err := timex.Modify(v, pattern)
	s.logResult("ModifyDateTime", mdwlog.Fields{"value": v.String(), "pattern": pattern}, res, err)
	return res, err
}

// ModifyDateTimeSkipWeekends applies pattern to v. With skip set, a result
// on a weekend day is moved to the next working day in the direction of
// the change.
func (s *Service) ModifyDateTimeSkipWeekends(v timex.Temporal, pattern string, skip bool) (timex.Temporal, error) {
	res, err := s.modifySkipWeekends(v, pattern, skip)
	s.logResult("ModifyDateTimeSkipWeekends", mdwlog.Fields{"value": v.String(), "pattern": pattern, "skip": skip}, res, err)
	return res, err
}

func (s *Service) modifySkipWeekends(v timex.Temporal, pattern string, skip bool) (timex.Temporal, error) {
	res, err := timex.Modify(v, pattern)
	if err != nil || !skip {
		return res, err
	}
	return timex.RollToBusinessDay(v, res, s.calendar.Weekends)
}

// ModifyDateTimeByZoneID shifts the UTC date-time v into zone, applies
// pattern on the zone's wall clock and converts the result back to UTC
func (s *Service) ModifyDateTimeByZoneID(v timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	return s.inZone("ModifyDateTimeByZoneID", v, zone, func(local timex.Temporal) (timex.Temporal, error) {
		return timex.Modify(local, pattern)
	})
}

// ModifyDateTimeByZoneIDSkipWeekends is ModifyDateTimeByZoneID with the
// weekend roll applied on the zone's wall clock when skip is set
func (s *Service) ModifyDateTimeByZoneIDSkipWeekends(v timex.Temporal, pattern string, skip bool, zone string) (timex.Temporal, error) {
	return s.inZone("ModifyDateTimeByZoneIDSkipWeekends", v, zone, func(local timex.Temporal) (timex.Temporal, error) {
		return s.modifySkipWeekends(local, pattern, skip)
	})
}

// ModifyBusinessDateTime applies pattern to v and runs the business-day
// walk. Weekend names given here replace the configured weekends for this
// call; configured holidays still apply.
func (s *Service) ModifyBusinessDateTime(v timex.Temporal, pattern string, weekends ...string) (timex.Temporal, error) {
	cal, err := s.calendarFor(weekends)
	if err != nil {
		return timex.Temporal{}, err
	}
	res, err := s.business(cal, v, pattern)
	s.logResult("ModifyBusinessDateTime", mdwlog.Fields{"value": v.String(), "pattern": pattern, "weekends": cal.Weekends.String()}, res, err)
	return res, err
}

// ModifyBusinessDateTimeByZoneID is ModifyBusinessDateTime with the walk
// done on the wall clock of zone
func (s *Service) ModifyBusinessDateTimeByZoneID(v timex.Temporal, pattern, zone string, weekends ...string) (timex.Temporal, error) {
	cal, err := s.calendarFor(weekends)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.inZone("ModifyBusinessDateTimeByZoneID", v, zone, func(local timex.Temporal) (timex.Temporal, error) {
		return s.business(cal, local, pattern)
	})
}

func (s *Service) business(cal timex.BusinessCalendar, v timex.Temporal, pattern string) (timex.Temporal, error) {
	modified, err := timex.Modify(v, pattern)
	if err != nil {
		return timex.Temporal{}, err
	}
	res, err := cal.Adjust(v, modified)
	if err != nil {
		return timex.Temporal{}, err
	}
	s.traceWalk(cal, v, modified, res)
	return res, nil
}

// traceWalk logs the non-business days between original and the adjusted
// result
func (s *Service) traceWalk(cal timex.BusinessCalendar, original, modified, adjusted timex.Temporal) {
	if !s.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		return
	}
	from, _ := original.Date()
	to, _ := adjusted.Date()
	step := "D+1"
	if to.Before(from) {
		step = "D-1"
	}
	skipped := 0
	for d := from; ; {
		if !cal.IsBusinessDay(d) {
			skipped++
			s.logger.Trace("non-business day", mdwlog.Fields{
				"date":    d.String(),
				"weekday": d.Weekday().String(),
				"names":   s.holidays.Lookup(d),
			})
		}
		if d.Equal(to) {
			break
		}
		d, _ = timex.Modify(d, step)
	}
	s.logger.Trace("business walk", mdwlog.Fields{
		"original": original.String(),
		"modified": modified.String(),
		"adjusted": adjusted.String(),
		"skipped":  skipped,
	})
}

// ModifyDate applies pattern to a date. The date is modified as its
// midnight, so time fields can carry into the date.
func (s *Service) ModifyDate(date timex.Temporal, pattern string) (timex.Temporal, error) {
	dt, err := date.DateTime()
	if err != nil {
		return timex.Temporal{}, err
	}
	res, err := s.ModifyDateTime(dt, pattern)
	if err != nil {
		return timex.Temporal{}, err
	}
	return res.Date()
}

// ModifyTime applies pattern to a time of day placed on today's UTC date
// and returns the resulting time of day
func (s *Service) ModifyTime(tod timex.Temporal, pattern string) (timex.Temporal, error) {
	dt, err := s.Today().At(tod)
	if err != nil {
		return timex.Temporal{}, err
	}
	res, err := s.ModifyDateTime(dt, pattern)
	if err != nil {
		return timex.Temporal{}, err
	}
	return res.TimeOfDay()
}

// ModifyFormatted parses source with format, applies pattern and formats
// the result with the same format
func (s *Service) ModifyFormatted(source, format, pattern string) (string, error) {
	v, err := timex.Parse(source, format)
	if err != nil {
		return "", err
	}
	res, err := s.ModifyDateTime(v, pattern)
	if err != nil {
		return "", err
	}
	return timex.Format(res, format)
}

// ModifyFormattedByZoneID detects the format of the UTC source, applies
// pattern on the wall clock of zone and formats the resulting instant in
// zone
func (s *Service) ModifyFormattedByZoneID(source, format, pattern, zone string) (string, error) {
	v, err := timex.ParseAuto(source)
	if err != nil {
		return "", err
	}
	return s.FormatDateTimeByZoneID(v, format, pattern, zone)
}

// ===============================
// Epoch, parse and format
// ===============================

// FromEpochMillis converts Unix milliseconds to a UTC date-time and
// applies pattern
func (s *Service) FromEpochMillis(ms int64, pattern string) (timex.Temporal, error) {
	return s.ModifyDateTime(timex.FromEpochMillis(ms), pattern)
}

// FromEpochMillisByZoneID converts Unix milliseconds to a UTC date-time and
// applies pattern on the wall clock of zone
func (s *Service) FromEpochMillisByZoneID(ms int64, pattern, zone string) (timex.Temporal, error) {
	return s.ModifyDateTimeByZoneID(timex.FromEpochMillis(ms), pattern, zone)
}

// ParseDateTime parses source with format and applies pattern. A parsed
// date becomes its midnight.
func (s *Service) ParseDateTime(source, format, pattern string) (timex.Temporal, error) {
	v, err := timex.Parse(source, format)
	if err != nil {
		return timex.Temporal{}, err
	}
	if v.Kind() == timex.KindDate {
		if v, err = v.DateTime(); err != nil {
			return timex.Temporal{}, err
		}
	}
	return s.ModifyDateTime(v, pattern)
}

// ParseDateTimeAuto parses source in the format implied by its length
func (s *Service) ParseDateTimeAuto(source string) (timex.Temporal, error) {
	return timex.ParseAuto(source)
}

// ParseDateTimeByZoneID parses the UTC source with format and applies
// pattern on the wall clock of zone
func (s *Service) ParseDateTimeByZoneID(source, format, pattern, zone string) (timex.Temporal, error) {
	v, err := s.ParseDateTime(source, format, "")
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ModifyDateTimeByZoneID(v, pattern, zone)
}

// FormatDateTime applies pattern to v and formats the result
func (s *Service) FormatDateTime(v timex.Temporal, format, pattern string) (string, error) {
	res, err := s.ModifyDateTime(v, pattern)
	if err != nil {
		return "", err
	}
	return timex.Format(res, format)
}

// FormatDateTimeByZoneID applies pattern to the UTC date-time v on the
// wall clock of zone and formats the resulting instant in zone
func (s *Service) FormatDateTimeByZoneID(v timex.Temporal, format, pattern, zone string) (string, error) {
	res, err := s.ModifyDateTimeByZoneID(v, pattern, zone)
	if err != nil {
		return "", err
	}
	loc, err := s.zone(zone)
	if err != nil {
		return "", err
	}
	zoned, err := res.In(loc)
	if err != nil {
		return "", err
	}
	return timex.Format(zoned, format)
}

// FormatNow formats the modified current UTC date-time
func (s *Service) FormatNow(format, pattern string) (string, error) {
	return s.FormatDateTime(s.Now(), format, pattern)
}

// FormatNowByZoneID formats the current instant in zone after applying
// pattern on the zone's wall clock
func (s *Service) FormatNowByZoneID(format, pattern, zone string) (string, error) {
	return s.FormatDateTimeByZoneID(s.Now(), format, pattern, zone)
}

// ===============================
// Merge and components
// ===============================

// MergeDateTime combines the date of date with the time of day of tod and
// applies pattern
func (s *Service) MergeDateTime(date, tod timex.Temporal, pattern string) (timex.Temporal, error) {
	merged, err := date.At(tod)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ModifyDateTime(merged, pattern)
}

// MergeDateTimeByZoneID merges a UTC date and time of day and applies
// pattern on the wall clock of zone
func (s *Service) MergeDateTimeByZoneID(date, tod timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	merged, err := date.At(tod)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ModifyDateTimeByZoneID(merged, pattern, zone)
}

// DiffDateTime returns minuend minus subtrahend in the unit of field code
func (s *Service) DiffDateTime(minuend, subtrahend timex.Temporal, code string) (int64, error) {
	return timex.DiffCode(minuend, subtrahend, code)
}

// DiffDateTimeISO parses two ISO date-times, normalizes zoned values to
// UTC and returns their difference in the unit of field code
func (s *Service) DiffDateTimeISO(minuend, subtrahend, code string) (int64, error) {
	a, err := timex.ParseISO(minuend)
	if err != nil {
		return 0, err
	}
	b, err := timex.ParseISO(subtrahend)
	if err != nil {
		return 0, err
	}
	return timex.DiffCode(a.UTC(), b.UTC(), code)
}

// DateComponent extracts the value of field code from v
func (s *Service) DateComponent(v timex.Temporal, code string) (int64, error) {
	return timex.ExtractCode(v, code)
}

// ===============================
// Calendar queries
// ===============================

// IsBusinessDay reports whether the date of v is a business day of the
// configured calendar
func (s *Service) IsBusinessDay(v timex.Temporal) bool {
	return s.calendar.IsBusinessDay(v)
}

// CountBusinessDays counts the business days from start to end, both
// inclusive
func (s *Service) CountBusinessDays(start, end timex.Temporal) (int64, error) {
	return s.calendar.CountBusinessDays(start, end)
}

// HolidayNames returns the names of the holidays on the date of v
func (s *Service) HolidayNames(v timex.Temporal) []string {
	return s.holidays.Lookup(v)
}

// Holidays returns the named holidays of the configured calendar
func (s *Service) Holidays() []holidays.Holiday {
	return s.holidays.Holidays()
}

// NextScheduled returns the first instant after v matched by a standard
// five-field cron spec, evaluated in UTC
func (s *Service) NextScheduled(v timex.Temporal, spec string) (timex.Temporal, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return timex.Temporal{}, mdwerror.Wrap(err, "invalid cron spec").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("service.NextScheduled").
			WithDetail("spec", spec)
	}

	from := v.UTC()
	if from.Kind() == timex.KindDate {
		if from, err = from.DateTime(); err != nil {
			return timex.Temporal{}, err
		}
	}
	if from.Kind() != timex.KindDateTime {
		return timex.Temporal{}, mdwerror.New("schedules need a date or date-time").
			WithCode(mdwerror.CodeUnsupportedField).
			WithOperation("service.NextScheduled").
			WithDetail("kind", from.Kind().String())
	}

	next := schedule.Next(from.Time())
	if next.IsZero() {
		return timex.Temporal{}, mdwerror.New("cron spec never fires").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("service.NextScheduled").
			WithDetail("spec", spec)
	}
	return timex.UTCDateTimeOf(next), nil
}

// ===============================
// Helpers
// ===============================

// zone resolves a zone id, falling back to the default zone
func (s *Service) zone(id string) (*time.Location, error) {
	if id == "" {
		id = s.defaultZone
	}
	return timex.LoadZone(id)
}

// inZone runs op on the wall clock of zone. v is taken as a UTC instant; a
// date is taken as its midnight. The result is returned as a UTC date-time.
func (s *Service) inZone(operation string, v timex.Temporal, zone string, op func(timex.Temporal) (timex.Temporal, error)) (timex.Temporal, error) {
	fields := mdwlog.Fields{"value": v.String(), "zone": zone}

	res, err := func() (timex.Temporal, error) {
		loc, err := s.zone(zone)
		if err != nil {
			return timex.Temporal{}, err
		}
		instant := v.UTC()
		if instant.Kind() == timex.KindDate {
			if instant, err = instant.DateTime(); err != nil {
				return timex.Temporal{}, err
			}
		}
		zoned, err := instant.In(loc)
		if err != nil {
			return timex.Temporal{}, err
		}
		local, err := op(zoned.Local())
		if err != nil {
			return timex.Temporal{}, err
		}
		back, err := local.AtZone(loc)
		if err != nil {
			return timex.Temporal{}, err
		}
		return back.UTC(), nil
	}()

	s.logResult(operation, fields, res, err)
	return res, err
}

// calendarFor returns the configured calendar, with its weekends replaced
// when names are given
func (s *Service) calendarFor(names []string) (timex.BusinessCalendar, error) {
	cal := s.calendar
	if len(names) == 0 {
		return cal, nil
	}
	weekends, err := timex.ParseWeekends(names...)
	if err != nil {
		return timex.BusinessCalendar{}, err
	}
	cal.Weekends = weekends
	return cal, nil
}

func (s *Service) logResult(operation string, fields mdwlog.Fields, res timex.Temporal, err error) {
	fields = fields.Merge(mdwlog.Field("operation", operation))
	if err != nil {
		s.logger.Debug("operation failed", fields, mdwlog.Err(err))
		return
	}
	if s.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		s.logger.Debug("operation completed", fields, mdwlog.Field("result", res.String()))
	}
}
