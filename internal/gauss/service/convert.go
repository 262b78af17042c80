package service

import (
	"github.com/msto63/gauss/foundation/utils/timex"
)

// ===============================
// Date and time views
// ===============================

// GetDateByZoneID returns the date of the GetDateTimeByZoneID result. The
// date is read from the UTC instant, not from the zone's wall clock.
func (s *Service) GetDateByZoneID(pattern, zone string) (timex.Temporal, error) {
	v, err := s.GetDateTimeByZoneID(pattern, zone)
	if err != nil {
		return timex.Temporal{}, err
	}
	return v.Date()
}

// GetTimeByZoneID returns the UTC time of day of the GetDateTimeByZoneID
// result
func (s *Service) GetTimeByZoneID(pattern, zone string) (timex.Temporal, error) {
	v, err := s.GetDateTimeByZoneID(pattern, zone)
	if err != nil {
		return timex.Temporal{}, err
	}
	return v.TimeOfDay()
}

// ModifyDateByZoneID applies pattern to the midnight of date on the wall
// clock of zone and returns the UTC date of the result
func (s *Service) ModifyDateByZoneID(date timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	d, err := date.Date()
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ToDateByZoneID(d, pattern, zone)
}

// ModifyTimeByZoneID places tod on today's UTC date, applies pattern on
// the wall clock of zone and returns the UTC time of day of the result
func (s *Service) ModifyTimeByZoneID(tod timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	t, err := tod.TimeOfDay()
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ToTimeByZoneID(t, pattern, zone)
}

// ToDate promotes v to a UTC date-time, applies pattern and returns the
// date. A time of day is placed on today's UTC date.
func (s *Service) ToDate(v timex.Temporal, pattern string) (timex.Temporal, error) {
	return s.dateOf(s.modifyPromoted(v, pattern))
}

// ToTime is ToDate returning the time of day
func (s *Service) ToTime(v timex.Temporal, pattern string) (timex.Temporal, error) {
	return s.timeOf(s.modifyPromoted(v, pattern))
}

// ToDateByZoneID is ToDate with pattern applied on the wall clock of zone
func (s *Service) ToDateByZoneID(v timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	return s.dateOf(s.modifyPromotedInZone(v, pattern, zone))
}

// ToTimeByZoneID is ToTime with pattern applied on the wall clock of zone
func (s *Service) ToTimeByZoneID(v timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	return s.timeOf(s.modifyPromotedInZone(v, pattern, zone))
}

// EpochToDate returns the UTC date of Unix milliseconds after pattern
func (s *Service) EpochToDate(ms int64, pattern string) (timex.Temporal, error) {
	return s.dateOf(s.FromEpochMillis(ms, pattern))
}

// EpochToTime returns the UTC time of day of Unix milliseconds after
// pattern
func (s *Service) EpochToTime(ms int64, pattern string) (timex.Temporal, error) {
	return s.timeOf(s.FromEpochMillis(ms, pattern))
}

// EpochToDateByZoneID is EpochToDate with pattern applied on the wall
// clock of zone
func (s *Service) EpochToDateByZoneID(ms int64, pattern, zone string) (timex.Temporal, error) {
	return s.dateOf(s.FromEpochMillisByZoneID(ms, pattern, zone))
}

// EpochToTimeByZoneID is EpochToTime with pattern applied on the wall
// clock of zone
func (s *Service) EpochToTimeByZoneID(ms int64, pattern, zone string) (timex.Temporal, error) {
	return s.timeOf(s.FromEpochMillisByZoneID(ms, pattern, zone))
}

// ParseDate parses source with format, applies pattern and returns the
// date
func (s *Service) ParseDate(source, format, pattern string) (timex.Temporal, error) {
	v, err := timex.Parse(source, format)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ToDate(v, pattern)
}

// ParseTime parses source with format, applies pattern and returns the
// time of day
func (s *Service) ParseTime(source, format, pattern string) (timex.Temporal, error) {
	v, err := timex.Parse(source, format)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ToTime(v, pattern)
}

// ParseDateByZoneID is ParseDate with pattern applied on the wall clock of
// zone
func (s *Service) ParseDateByZoneID(source, format, pattern, zone string) (timex.Temporal, error) {
	v, err := timex.Parse(source, format)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ToDateByZoneID(v, pattern, zone)
}

// ParseTimeByZoneID is ParseTime with pattern applied on the wall clock of
// zone
func (s *Service) ParseTimeByZoneID(source, format, pattern, zone string) (timex.Temporal, error) {
	v, err := timex.Parse(source, format)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ToTimeByZoneID(v, pattern, zone)
}

// FormatDate formats the midnight of date after pattern
func (s *Service) FormatDate(date timex.Temporal, format, pattern string) (string, error) {
	d, err := date.Date()
	if err != nil {
		return "", err
	}
	dt, err := s.promote(d)
	if err != nil {
		return "", err
	}
	return s.FormatDateTime(dt, format, pattern)
}

// FormatTime formats tod on today's UTC date after pattern
func (s *Service) FormatTime(tod timex.Temporal, format, pattern string) (string, error) {
	t, err := tod.TimeOfDay()
	if err != nil {
		return "", err
	}
	dt, err := s.promote(t)
	if err != nil {
		return "", err
	}
	return s.FormatDateTime(dt, format, pattern)
}

// FormatDateByZoneID takes the midnight of date as UTC, applies pattern on
// the wall clock of zone and formats the resulting instant in zone
func (s *Service) FormatDateByZoneID(date timex.Temporal, format, pattern, zone string) (string, error) {
	d, err := date.Date()
	if err != nil {
		return "", err
	}
	dt, err := s.promote(d)
	if err != nil {
		return "", err
	}
	return s.FormatDateTimeByZoneID(dt, format, pattern, zone)
}

// FormatTimeByZoneID is FormatDateByZoneID for a time of day on today's
// UTC date
func (s *Service) FormatTimeByZoneID(tod timex.Temporal, format, pattern, zone string) (string, error) {
	t, err := tod.TimeOfDay()
	if err != nil {
		return "", err
	}
	dt, err := s.promote(t)
	if err != nil {
		return "", err
	}
	return s.FormatDateTimeByZoneID(dt, format, pattern, zone)
}

// promote turns v into a UTC date-time: a date becomes its midnight, a
// time of day is placed on today's UTC date and a zoned value is
// normalized to UTC
func (s *Service) promote(v timex.Temporal) (timex.Temporal, error) {
	switch v.Kind() {
	case timex.KindTime:
		return s.Today().At(v)
	case timex.KindDate:
		return v.DateTime()
	default:
		return v.UTC(), nil
	}
}

func (s *Service) modifyPromoted(v timex.Temporal, pattern string) (timex.Temporal, error) {
	dt, err := s.promote(v)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ModifyDateTime(dt, pattern)
}

func (s *Service) modifyPromotedInZone(v timex.Temporal, pattern, zone string) (timex.Temporal, error) {
	dt, err := s.promote(v)
	if err != nil {
		return timex.Temporal{}, err
	}
	return s.ModifyDateTimeByZoneID(dt, pattern, zone)
}

func (s *Service) dateOf(v timex.Temporal, err error) (timex.Temporal, error) {
	if err != nil {
		return timex.Temporal{}, err
	}
	return v.Date()
}

func (s *Service) timeOf(v timex.Temporal, err error) (timex.Temporal, error) {
	if err != nil {
		return timex.Temporal{}, err
	}
	return v.TimeOfDay()
}
