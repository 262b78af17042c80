package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/timex"
)

// FunctionInfo describes a function callable by name
type FunctionInfo struct {
	Name        string
	Signature   string
	Description string
}

type function struct {
	info    FunctionInfo
	minArgs int
	maxArgs int // -1 for variadic
	call    func(s *Service, a args) (any, error)
}

// functions is keyed by name; see registerFunctions
var functions = map[string]function{}

func register(name, signature, description string, minArgs, maxArgs int, call func(s *Service, a args) (any, error)) {
	functions[name] = function{
		info:    FunctionInfo{Name: name, Signature: signature, Description: description},
		minArgs: minArgs,
		maxArgs: maxArgs,
		call:    call,
	}
}

func init() {
	registerFunctions()
}

func registerFunctions() {
	// current date and time
	register("now", "now()", "current UTC date-time", 0, 0,
		func(s *Service, a args) (any, error) { return s.Now(), nil })
	register("today", "today()", "current UTC date", 0, 0,
		func(s *Service, a args) (any, error) { return s.Today(), nil })
	register("currentTime", "currentTime()", "current UTC time of day", 0, 0,
		func(s *Service, a args) (any, error) { return s.CurrentTime(), nil })
	register("getDateTime", "getDateTime(pattern?)", "modified current UTC date-time", 0, 1,
		func(s *Service, a args) (any, error) { return s.GetDateTime(a.optString(0)) })
	register("getDate", "getDate(pattern?)", "date of the modified current UTC date-time", 0, 1,
		func(s *Service, a args) (any, error) { return s.GetDate(a.optString(0)) })
	register("getTime", "getTime(pattern?)", "time of day of the modified current UTC date-time", 0, 1,
		func(s *Service, a args) (any, error) { return s.GetTime(a.optString(0)) })
	register("getDateTimeSkipWeekends", "getDateTimeSkipWeekends(pattern, skip)", "modified current date-time moved off weekend days", 2, 2,
		func(s *Service, a args) (any, error) {
			p, skip, err := a.stringBool(0, 1)
			if err != nil {
				return nil, err
			}
			return s.GetDateTimeSkipWeekends(p, skip)
		})
	register("getDateTimeByZoneId", "getDateTimeByZoneId(pattern, zone)", "current date-time modified on the wall clock of zone, as UTC", 2, 2,
		func(s *Service, a args) (any, error) {
			return call2(a, s.GetDateTimeByZoneID)
		})
	register("getDateTimeByZoneIdSkipWeekends", "getDateTimeByZoneIdSkipWeekends(pattern, skip, zone)", "getDateTimeByZoneId with the weekend roll", 3, 3,
		func(s *Service, a args) (any, error) {
			p, skip, err := a.stringBool(0, 1)
			if err != nil {
				return nil, err
			}
			zone, err := a.string(2)
			if err != nil {
				return nil, err
			}
			return s.GetDateTimeByZoneIDSkipWeekends(p, skip, zone)
		})
	register("getBusinessDateTime", "getBusinessDateTime(pattern, weekends...)", "modified current date-time extended past non-business days", 1, -1,
		func(s *Service, a args) (any, error) {
			p, err := a.string(0)
			if err != nil {
				return nil, err
			}
			weekends, err := a.rest(1)
			if err != nil {
				return nil, err
			}
			return s.GetBusinessDateTime(p, weekends...)
		})
	register("getBusinessDateTimeByZoneId", "getBusinessDateTimeByZoneId(pattern, zone, weekends...)", "getBusinessDateTime on the wall clock of zone", 2, -1,
		func(s *Service, a args) (any, error) {
			p, zone, err := a.strings2(0, 1)
			if err != nil {
				return nil, err
			}
			weekends, err := a.rest(2)
			if err != nil {
				return nil, err
			}
			return s.GetBusinessDateTimeByZoneID(p, zone, weekends...)
		})
	register("getUTCTimeNanosecond", "getUTCTimeNanosecond()", "current instant in Unix nanoseconds", 0, 0,
		func(s *Service, a args) (any, error) { return s.UTCTimeNanosecond(), nil })

	// modification
	register("modifyDateTime", "modifyDateTime(value, pattern)", "apply a modify pattern", 2, 2,
		func(s *Service, a args) (any, error) { return callTemporal(a, s.ModifyDateTime) })
	register("modifyDateTimeSkipWeekends", "modifyDateTimeSkipWeekends(value, pattern, skip)", "apply a modify pattern and move the result off weekend days", 3, 3,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			p, skip, err := a.stringBool(1, 2)
			if err != nil {
				return nil, err
			}
			return s.ModifyDateTimeSkipWeekends(v, p, skip)
		})
	register("modifyDateTimeByZoneId", "modifyDateTimeByZoneId(value, pattern, zone)", "apply a modify pattern on the wall clock of zone, as UTC", 3, 3,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			p, zone, err := a.strings2(1, 2)
			if err != nil {
				return nil, err
			}
			return s.ModifyDateTimeByZoneID(v, p, zone)
		})
	register("modifyDateTimeByZoneIdSkipWeekends", "modifyDateTimeByZoneIdSkipWeekends(value, pattern, skip, zone)", "modifyDateTimeByZoneId with the weekend roll", 4, 4,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			p, skip, err := a.stringBool(1, 2)
			if err != nil {
				return nil, err
			}
			zone, err := a.string(3)
			if err != nil {
				return nil, err
			}
			return s.ModifyDateTimeByZoneIDSkipWeekends(v, p, skip, zone)
		})
	register("modifyBusinessDateTime", "modifyBusinessDateTime(value, pattern, weekends...)", "apply a modify pattern and extend past non-business days", 2, -1,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			p, err := a.string(1)
			if err != nil {
				return nil, err
			}
			weekends, err := a.rest(2)
			if err != nil {
				return nil, err
			}
			return s.ModifyBusinessDateTime(v, p, weekends...)
		})
	register("modifyBusinessDateTimeByZoneId", "modifyBusinessDateTimeByZoneId(value, pattern, zone, weekends...)", "modifyBusinessDateTime on the wall clock of zone", 3, -1,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			p, zone, err := a.strings2(1, 2)
			if err != nil {
				return nil, err
			}
			weekends, err := a.rest(3)
			if err != nil {
				return nil, err
			}
			return s.ModifyBusinessDateTimeByZoneID(v, p, zone, weekends...)
		})
	register("modifyDate", "modifyDate(date, pattern)", "apply a modify pattern to a date", 2, 2,
		func(s *Service, a args) (any, error) { return callTemporal(a, s.ModifyDate) })
	register("modifyTime", "modifyTime(time, pattern)", "apply a modify pattern to a time of day", 2, 2,
		func(s *Service, a args) (any, error) { return callTemporal(a, s.ModifyTime) })
	register("modifyFormatted", "modifyFormatted(source, format, pattern)", "parse, modify and format again", 3, 3,
		func(s *Service, a args) (any, error) {
			src, format, p, err := a.strings3(0, 1, 2)
			if err != nil {
				return nil, err
			}
			return s.ModifyFormatted(src, format, p)
		})
	register("modifyFormattedByZoneId", "modifyFormattedByZoneId(source, format, pattern, zone)", "modify a UTC date-time on the wall clock of zone and format it in zone", 4, 4,
		func(s *Service, a args) (any, error) {
			src, format, p, err := a.strings3(0, 1, 2)
			if err != nil {
				return nil, err
			}
			zone, err := a.string(3)
			if err != nil {
				return nil, err
			}
			return s.ModifyFormattedByZoneID(src, format, p, zone)
		})

	// epoch, parse and format
	register("fromEpochMillis", "fromEpochMillis(ms, pattern?)", "UTC date-time of Unix milliseconds", 1, 2,
		func(s *Service, a args) (any, error) {
			ms, err := a.int64(0)
			if err != nil {
				return nil, err
			}
			return s.FromEpochMillis(ms, a.optString(1))
		})
	register("fromEpochMillisByZoneId", "fromEpochMillisByZoneId(ms, pattern, zone)", "Unix milliseconds modified on the wall clock of zone", 3, 3,
		func(s *Service, a args) (any, error) {
			ms, err := a.int64(0)
			if err != nil {
				return nil, err
			}
			p, zone, err := a.strings2(1, 2)
			if err != nil {
				return nil, err
			}
			return s.FromEpochMillisByZoneID(ms, p, zone)
		})
	register("parseDateTime", "parseDateTime(source, format, pattern?)", "parse with a format pattern and modify", 2, 3,
		func(s *Service, a args) (any, error) {
			src, format, err := a.strings2(0, 1)
			if err != nil {
				return nil, err
			}
			return s.ParseDateTime(src, format, a.optString(2))
		})
	register("parseDateTimeAuto", "parseDateTimeAuto(source)", "parse in the format implied by the length of source", 1, 1,
		func(s *Service, a args) (any, error) {
			src, err := a.string(0)
			if err != nil {
				return nil, err
			}
			return s.ParseDateTimeAuto(src)
		})
	register("parseDateTimeByZoneId", "parseDateTimeByZoneId(source, format, pattern, zone)", "parse a UTC date-time and modify it on the wall clock of zone", 4, 4,
		func(s *Service, a args) (any, error) {
			src, format, p, err := a.strings3(0, 1, 2)
			if err != nil {
				return nil, err
			}
			zone, err := a.string(3)
			if err != nil {
				return nil, err
			}
			return s.ParseDateTimeByZoneID(src, format, p, zone)
		})
	register("formatDateTime", "formatDateTime(value, format, pattern?)", "modify and format", 2, 3,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			format, err := a.string(1)
			if err != nil {
				return nil, err
			}
			return s.FormatDateTime(v, format, a.optString(2))
		})
	register("formatDateTimeByZoneId", "formatDateTimeByZoneId(value, format, pattern, zone)", "modify on the wall clock of zone and format in zone", 4, 4,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			format, p, zone, err := a.strings3(1, 2, 3)
			if err != nil {
				return nil, err
			}
			return s.FormatDateTimeByZoneID(v, format, p, zone)
		})
	register("formatNow", "formatNow(format, pattern?)", "format the modified current UTC date-time", 1, 2,
		func(s *Service, a args) (any, error) {
			format, err := a.string(0)
			if err != nil {
				return nil, err
			}
			return s.FormatNow(format, a.optString(1))
		})
	register("formatNowByZoneId", "formatNowByZoneId(format, pattern, zone)", "format the current instant in zone", 3, 3,
		func(s *Service, a args) (any, error) {
			format, p, zone, err := a.strings3(0, 1, 2)
			if err != nil {
				return nil, err
			}
			return s.FormatNowByZoneID(format, p, zone)
		})

	// merge and components
	register("mergeDateTime", "mergeDateTime(date, time, pattern?)", "combine a date and a time of day", 2, 3,
		func(s *Service, a args) (any, error) {
			d, tod, err := a.temporals2(0, 1)
			if err != nil {
				return nil, err
			}
			return s.MergeDateTime(d, tod, a.optString(2))
		})
	register("mergeDateTimeByZoneId", "mergeDateTimeByZoneId(date, time, pattern, zone)", "combine and modify on the wall clock of zone", 4, 4,
		func(s *Service, a args) (any, error) {
			d, tod, err := a.temporals2(0, 1)
			if err != nil {
				return nil, err
			}
			p, zone, err := a.strings2(2, 3)
			if err != nil {
				return nil, err
			}
			return s.MergeDateTimeByZoneID(d, tod, p, zone)
		})
	register("diffDateTime", "diffDateTime(minuend, subtrahend, field)", "difference in the unit of a field code", 3, 3,
		func(s *Service, a args) (any, error) {
			x, y, err := a.temporals2(0, 1)
			if err != nil {
				return nil, err
			}
			code, err := a.string(2)
			if err != nil {
				return nil, err
			}
			return s.DiffDateTime(x, y, code)
		})
	register("diffDateTimeISO", "diffDateTimeISO(minuend, subtrahend, field)", "difference of two ISO date-times compared in UTC", 3, 3,
		func(s *Service, a args) (any, error) {
			x, y, code, err := a.strings3(0, 1, 2)
			if err != nil {
				return nil, err
			}
			return s.DiffDateTimeISO(x, y, code)
		})
	register("getDateComponent", "getDateComponent(value, field)", "value of a field", 2, 2,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			code, err := a.string(1)
			if err != nil {
				return nil, err
			}
			return s.DateComponent(v, code)
		})

	// calendar and schedules
	register("isBusinessDay", "isBusinessDay(date)", "whether the date is a business day", 1, 1,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			return s.IsBusinessDay(v), nil
		})
	register("countBusinessDays", "countBusinessDays(start, end)", "business days from start to end, both inclusive", 2, 2,
		func(s *Service, a args) (any, error) {
			x, y, err := a.temporals2(0, 1)
			if err != nil {
				return nil, err
			}
			return s.CountBusinessDays(x, y)
		})
	register("nextScheduled", "nextScheduled(value, cron)", "next instant after value matched by a cron spec", 2, 2,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			spec, err := a.string(1)
			if err != nil {
				return nil, err
			}
			return s.NextScheduled(v, spec)
		})

	registerConversions()
	registerOrderFields()
}

func registerConversions() {
	register("getDateByZoneId", "getDateByZoneId(pattern, zone)", "UTC date of getDateTimeByZoneId", 2, 2,
		func(s *Service, a args) (any, error) { return call2(a, s.GetDateByZoneID) })
	register("getTimeByZoneId", "getTimeByZoneId(pattern, zone)", "UTC time of day of getDateTimeByZoneId", 2, 2,
		func(s *Service, a args) (any, error) { return call2(a, s.GetTimeByZoneID) })
	register("modifyDateByZoneId", "modifyDateByZoneId(date, pattern, zone)", "modify the midnight of a date on the wall clock of zone, UTC date", 3, 3,
		func(s *Service, a args) (any, error) { return callTemporalZone(a, s.ModifyDateByZoneID) })
	register("modifyTimeByZoneId", "modifyTimeByZoneId(time, pattern, zone)", "modify a time of day on the wall clock of zone, UTC time", 3, 3,
		func(s *Service, a args) (any, error) { return callTemporalZone(a, s.ModifyTimeByZoneID) })

	register("toDate", "toDate(value, pattern?)", "date of a modified value", 1, 2,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			return s.ToDate(v, a.optString(1))
		})
	register("toTime", "toTime(value, pattern?)", "time of day of a modified value", 1, 2,
		func(s *Service, a args) (any, error) {
			v, err := a.temporal(0)
			if err != nil {
				return nil, err
			}
			return s.ToTime(v, a.optString(1))
		})
	register("toDateByZoneId", "toDateByZoneId(value, pattern, zone)", "UTC date of a value modified on the wall clock of zone", 3, 3,
		func(s *Service, a args) (any, error) { return callTemporalZone(a, s.ToDateByZoneID) })
	register("toTimeByZoneId", "toTimeByZoneId(value, pattern, zone)", "UTC time of day of a value modified on the wall clock of zone", 3, 3,
		func(s *Service, a args) (any, error) { return callTemporalZone(a, s.ToTimeByZoneID) })

	register("epochToDate", "epochToDate(ms, pattern?)", "UTC date of Unix milliseconds", 1, 2,
		func(s *Service, a args) (any, error) {
			ms, err := a.int64(0)
			if err != nil {
				return nil, err
			}
			return s.EpochToDate(ms, a.optString(1))
		})
	register("epochToTime", "epochToTime(ms, pattern?)", "UTC time of day of Unix milliseconds", 1, 2,
		func(s *Service, a args) (any, error) {
			ms, err := a.int64(0)
			if err != nil {
				return nil, err
			}
			return s.EpochToTime(ms, a.optString(1))
		})
	register("epochToDateByZoneId", "epochToDateByZoneId(ms, pattern, zone)", "UTC date of Unix milliseconds modified on the wall clock of zone", 3, 3,
		func(s *Service, a args) (any, error) { return callEpochZone(a, s.EpochToDateByZoneID) })
	register("epochToTimeByZoneId", "epochToTimeByZoneId(ms, pattern, zone)", "UTC time of day of Unix milliseconds modified on the wall clock of zone", 3, 3,
		func(s *Service, a args) (any, error) { return callEpochZone(a, s.EpochToTimeByZoneID) })

	register("parseDate", "parseDate(source, format, pattern?)", "parse, modify and keep the date", 2, 3,
		func(s *Service, a args) (any, error) {
			src, format, err := a.strings2(0, 1)
			if err != nil {
				return nil, err
			}
			return s.ParseDate(src, format, a.optString(2))
		})
	register("parseTime", "parseTime(source, format, pattern?)", "parse, modify and keep the time of day", 2, 3,
		func(s *Service, a args) (any, error) {
			src, format, err := a.strings2(0, 1)
			if err != nil {
				return nil, err
			}
			return s.ParseTime(src, format, a.optString(2))
		})
	register("parseDateByZoneId", "parseDateByZoneId(source, format, pattern, zone)", "parse, modify on the wall clock of zone and keep the UTC date", 4, 4,
		func(s *Service, a args) (any, error) { return callParseZone(a, s.ParseDateByZoneID) })
	register("parseTimeByZoneId", "parseTimeByZoneId(source, format, pattern, zone)", "parse, modify on the wall clock of zone and keep the UTC time of day", 4, 4,
		func(s *Service, a args) (any, error) { return callParseZone(a, s.ParseTimeByZoneID) })

	register("formatDate", "formatDate(date, format, pattern?)", "modify and format a date", 2, 3,
		func(s *Service, a args) (any, error) { return callFormat(a, s.FormatDate) })
	register("formatTime", "formatTime(time, format, pattern?)", "modify and format a time of day", 2, 3,
		func(s *Service, a args) (any, error) { return callFormat(a, s.FormatTime) })
	register("formatDateByZoneId", "formatDateByZoneId(date?, format, pattern, zone)", "modify a date on the wall clock of zone and format in zone; today without date", 3, 4,
		func(s *Service, a args) (any, error) { return callFormatZone(a, s.Today(), s.FormatDateByZoneID) })
	register("formatTimeByZoneId", "formatTimeByZoneId(time?, format, pattern, zone)", "modify a time of day on the wall clock of zone and format in zone; now without time", 3, 4,
		func(s *Service, a args) (any, error) { return callFormatZone(a, s.CurrentTime(), s.FormatTimeByZoneID) })
}

func registerOrderFields() {
	register("generateTransactTime", "generateTransactTime(pattern?)", "modified current UTC date-time for TransactTime", 0, 1,
		func(s *Service, a args) (any, error) { return s.GenerateTransactTime(a.optString(0)) })
	register("generateClOrdID", "generateClOrdID()", "current Unix milliseconds plus a running sequence", 0, 0,
		func(s *Service, a args) (any, error) { return s.GenerateClOrdID(), nil })
	register("generateHexString", "generateHexString()", "hex bits of a random float", 0, 0,
		func(s *Service, a args) (any, error) { return s.GenerateHexString(), nil })
	register("generateInteger", "generateInteger(bound)", "random integer in [0, bound)", 1, 1,
		func(s *Service, a args) (any, error) {
			bound, err := a.int64(0)
			if err != nil {
				return nil, err
			}
			return s.GenerateInteger(bound)
		})
}

func call2(a args, fn func(string, string) (timex.Temporal, error)) (any, error) {
	x, y, err := a.strings2(0, 1)
	if err != nil {
		return nil, err
	}
	return fn(x, y)
}

func callTemporal(a args, fn func(timex.Temporal, string) (timex.Temporal, error)) (any, error) {
	v, err := a.temporal(0)
	if err != nil {
		return nil, err
	}
	p, err := a.string(1)
	if err != nil {
		return nil, err
	}
	return fn(v, p)
}

func callTemporalZone(a args, fn func(timex.Temporal, string, string) (timex.Temporal, error)) (any, error) {
	v, err := a.temporal(0)
	if err != nil {
		return nil, err
	}
	p, zone, err := a.strings2(1, 2)
	if err != nil {
		return nil, err
	}
	return fn(v, p, zone)
}

func callEpochZone(a args, fn func(int64, string, string) (timex.Temporal, error)) (any, error) {
	ms, err := a.int64(0)
	if err != nil {
		return nil, err
	}
	p, zone, err := a.strings2(1, 2)
	if err != nil {
		return nil, err
	}
	return fn(ms, p, zone)
}

func callParseZone(a args, fn func(string, string, string, string) (timex.Temporal, error)) (any, error) {
	src, format, p, err := a.strings3(0, 1, 2)
	if err != nil {
		return nil, err
	}
	zone, err := a.string(3)
	if err != nil {
		return nil, err
	}
	return fn(src, format, p, zone)
}

func callFormat(a args, fn func(timex.Temporal, string, string) (string, error)) (any, error) {
	v, err := a.temporal(0)
	if err != nil {
		return nil, err
	}
	format, err := a.string(1)
	if err != nil {
		return nil, err
	}
	return fn(v, format, a.optString(2))
}

// callFormatZone formats the optional leading value, or fallback when only
// format, pattern and zone are given
func callFormatZone(a args, fallback timex.Temporal, fn func(timex.Temporal, string, string, string) (string, error)) (any, error) {
	v, first := fallback, 0
	if len(a.values) == 4 {
		var err error
		if v, err = a.temporal(0); err != nil {
			return nil, err
		}
		first = 1
	}
	format, p, zone, err := a.strings3(first, first+1, first+2)
	if err != nil {
		return nil, err
	}
	return fn(v, format, p, zone)
}

// Functions returns the callable functions sorted by name
func (s *Service) Functions() []FunctionInfo {
	out := make([]FunctionInfo, 0, len(functions))
	for _, fn := range functions {
		out = append(out, fn.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call invokes a function by name. Temporal arguments may be passed as
// timex.Temporal, time.Time or string; strings are read as ISO values or
// in a format detected from their length.
func (s *Service) Call(name string, values ...any) (any, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, mdwerror.New("unknown function: "+name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("service.Call").
			WithDetail("function", name)
	}
	if len(values) < fn.minArgs || (fn.maxArgs >= 0 && len(values) > fn.maxArgs) {
		return nil, mdwerror.Newf("%s expects %s, got %d arguments", name, fn.info.Signature, len(values)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("service.Call").
			WithDetail("function", name)
	}

	timer := s.logger.StartTimer("call "+name).WithLevel(mdwlog.LevelTrace).WithField("function", name)
	res, err := fn.call(s, args{fn: name, values: values})
	timer.StopWithError(err)
	return res, err
}

// args coerces call arguments
type args struct {
	fn     string
	values []any
}

func (a args) invalid(i int, want string) error {
	return mdwerror.Newf("%s: argument %d must be %s, got %T", a.fn, i+1, want, a.values[i]).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("service.Call").
		WithDetail("function", a.fn).
		WithDetail("argument", i+1)
}

func (a args) string(i int) (string, error) {
	switch v := a.values[i].(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", a.invalid(i, "a string")
}

// optString returns argument i, or "" when it is absent or not a string
func (a args) optString(i int) string {
	if i >= len(a.values) {
		return ""
	}
	s, _ := a.values[i].(string)
	return s
}

func (a args) strings2(i, j int) (string, string, error) {
	x, err := a.string(i)
	if err != nil {
		return "", "", err
	}
	y, err := a.string(j)
	return x, y, err
}

func (a args) strings3(i, j, k int) (string, string, string, error) {
	x, y, err := a.strings2(i, j)
	if err != nil {
		return "", "", "", err
	}
	z, err := a.string(k)
	return x, y, z, err
}

// rest returns the string arguments from i on
func (a args) rest(i int) ([]string, error) {
	var out []string
	for ; i < len(a.values); i++ {
		s, err := a.string(i)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (a args) bool(i int) (bool, error) {
	switch v := a.values[i].(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
	}
	return false, a.invalid(i, "a boolean")
}

func (a args) stringBool(i, j int) (string, bool, error) {
	s, err := a.string(i)
	if err != nil {
		return "", false, err
	}
	b, err := a.bool(j)
	return s, b, err
}

func (a args) int64(i int) (int64, error) {
	switch v := a.values[i].(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), nil
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, a.invalid(i, "an integer")
}

func (a args) temporal(i int) (timex.Temporal, error) {
	switch v := a.values[i].(type) {
	case timex.Temporal:
		return v, nil
	case time.Time:
		return timex.UTCDateTimeOf(v), nil
	case string:
		if t, err := timex.ParseISO(v); err == nil {
			return t, nil
		}
		if t, err := timex.ParseAuto(v); err == nil {
			return t, nil
		}
		return timex.Temporal{}, a.invalid(i, "a date or time")
	}
	return timex.Temporal{}, a.invalid(i, "a date or time")
}

func (a args) temporals2(i, j int) (timex.Temporal, timex.Temporal, error) {
	x, err := a.temporal(i)
	if err != nil {
		return timex.Temporal{}, timex.Temporal{}, err
	}
	y, err := a.temporal(j)
	return x, y, err
}
