package service

import (
	"errors"
	"testing"
	"time"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/utils/timex"
)

func TestDateAndTimeViews(t *testing.T) {
	s := newTestService(t, Options{})
	const berlin = "Europe/Berlin"

	tests := []struct {
		name string
		call func() (timex.Temporal, error)
		want string
	}{
		{"GetDateByZoneID", func() (timex.Temporal, error) { return s.GetDateByZoneID("h=0:m=0", berlin) }, "2017-05-29"},
		{"GetTimeByZoneID", func() (timex.Temporal, error) { return s.GetTimeByZoneID("h=0:m=0", berlin) }, "22:00:23.439"},
		{"ModifyDateByZoneID", func() (timex.Temporal, error) {
			return s.ModifyDateByZoneID(timex.NewDate(2017, time.May, 30), "D+1", berlin)
		}, "2017-05-31"},
		{"ModifyDateByZoneID crosses back", func() (timex.Temporal, error) {
			return s.ModifyDateByZoneID(timex.NewDate(2017, time.May, 30), "h=0", berlin)
		}, "2017-05-29"},
		{"ModifyTimeByZoneID", func() (timex.Temporal, error) {
			return s.ModifyTimeByZoneID(timex.NewTime(23, 30, 0, 0), "m+45", berlin)
		}, "00:15:00"},
		{"ToDate from time", func() (timex.Temporal, error) { return s.ToDate(timex.NewTime(23, 0, 0, 0), "h+2") }, "2017-05-31"},
		{"ToTime from zoned", func() (timex.Temporal, error) {
			return s.ToTime(mustISO(t, "2017-05-30T16:00:00+02:00"), "m+5")
		}, "14:05:00"},
		{"ToDateByZoneID", func() (timex.Temporal, error) {
			return s.ToDateByZoneID(mustISO(t, "2017-05-30T23:30:00"), "D=1", berlin)
		}, "2017-04-30"},
		{"ToTimeByZoneID from date", func() (timex.Temporal, error) {
			return s.ToTimeByZoneID(timex.NewDate(2017, time.May, 30), "h=9", berlin)
		}, "07:00:00"},
		{"EpochToDate", func() (timex.Temporal, error) { return s.EpochToDate(1496152823439, "D+1") }, "2017-05-31"},
		{"EpochToTime", func() (timex.Temporal, error) { return s.EpochToTime(1496152823439, "") }, "14:00:23.439"},
		{"EpochToDateByZoneID", func() (timex.Temporal, error) { return s.EpochToDateByZoneID(1496152823439, "h=0", berlin) }, "2017-05-29"},
		{"EpochToTimeByZoneID", func() (timex.Temporal, error) {
			return s.EpochToTimeByZoneID(1496152823439, "h=0:m=0", berlin)
		}, "22:00:23.439"},
		{"ParseDate", func() (timex.Temporal, error) { return s.ParseDate("30.05.2017 23:30", "dd.MM.yyyy HH:mm", "h+1") }, "2017-05-31"},
		{"ParseTime on today", func() (timex.Temporal, error) { return s.ParseTime("14:35", "HH:mm", "h+10") }, "00:35:00"},
		{"ParseDateByZoneID", func() (timex.Temporal, error) {
			return s.ParseDateByZoneID("2017-05-30 23:30", "yyyy-MM-dd HH:mm", "D=1", berlin)
		}, "2017-04-30"},
		{"ParseTimeByZoneID", func() (timex.Temporal, error) {
			return s.ParseTimeByZoneID("2017-05-30 22:30", "yyyy-MM-dd HH:mm", "h=9", berlin)
		}, "07:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDateAndTime(t *testing.T) {
	s := newTestService(t, Options{})

	tests := []struct {
		name string
		call func() (string, error)
		want string
	}{
		{"FormatDate", func() (string, error) {
			return s.FormatDate(timex.NewDate(2017, time.May, 30), "dd.MM.yyyy HH:mm", "D+1")
		}, "31.05.2017 00:00"},
		{"FormatDate keeps the date of a date-time", func() (string, error) {
			return s.FormatDate(s.Now(), "dd.MM.yyyy HH:mm", "")
		}, "30.05.2017 00:00"},
		{"FormatTime on today", func() (string, error) {
			return s.FormatTime(timex.NewTime(14, 0, 0, 0), "yyyy-MM-dd HH:mm", "m+30")
		}, "2017-05-30 14:30"},
		{"FormatDateByZoneID", func() (string, error) {
			return s.FormatDateByZoneID(timex.NewDate(2017, time.May, 30), "yyyy-MM-dd HH:mm XXX", "", "Europe/Berlin")
		}, "2017-05-30 02:00 +02:00"},
		{"FormatTimeByZoneID", func() (string, error) {
			return s.FormatTimeByZoneID(timex.NewTime(23, 0, 0, 0), "yyyy-MM-dd HH:mm", "m+15", "Europe/Berlin")
		}, "2017-05-31 01:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConversionErrors(t *testing.T) {
	s := newTestService(t, Options{})

	if _, err := s.ModifyDateByZoneID(timex.NewTime(1, 0, 0, 0), "D+1", "UTC"); !errors.Is(err, timex.ErrUnsupportedField) {
		t.Errorf("ModifyDateByZoneID(time) error = %v, want ErrUnsupportedField", err)
	}
	if _, err := s.ModifyTimeByZoneID(timex.NewDate(2017, time.May, 30), "h+1", "UTC"); !errors.Is(err, timex.ErrUnsupportedField) {
		t.Errorf("ModifyTimeByZoneID(date) error = %v, want ErrUnsupportedField", err)
	}
	if _, err := s.FormatTime(timex.NewDate(2017, time.May, 30), "HH:mm", ""); !errors.Is(err, timex.ErrUnsupportedField) {
		t.Errorf("FormatTime(date) error = %v, want ErrUnsupportedField", err)
	}
	if _, err := s.ToDateByZoneID(s.Now(), "", "Mars/Olympus"); !mdwerror.HasCode(err, mdwerror.CodeInvalidTimeZone) {
		t.Errorf("ToDateByZoneID(bad zone) error = %v, want CodeInvalidTimeZone", err)
	}
	if _, err := s.ParseDate("30.05.2017", "yyyy-MM-dd", ""); !errors.Is(err, timex.ErrParse) {
		t.Errorf("ParseDate(mismatch) error = %v, want ErrParse", err)
	}
}
