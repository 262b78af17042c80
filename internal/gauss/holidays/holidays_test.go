package holidays

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/timex"
)

const testCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//gauss//holidays//EN
BEGIN:VEVENT
UID:new-year@gauss
DTSTAMP:20170101T000000Z
DTSTART;VALUE=DATE:20170101
RRULE:FREQ=YEARLY
SUMMARY:New Year
END:VEVENT
BEGIN:VEVENT
UID:christmas@gauss
DTSTAMP:20170101T000000Z
DTSTART;VALUE=DATE:20171225
DTEND;VALUE=DATE:20171227
RRULE:FREQ=YEARLY
EXDATE;VALUE=DATE:20191225
SUMMARY:Christmas
END:VEVENT
BEGIN:VEVENT
UID:company@gauss
DTSTAMP:20170101T000000Z
DTSTART;VALUE=DATE:20180601
SUMMARY:Company Day
END:VEVENT
BEGIN:VEVENT
UID:broken@gauss
DTSTAMP:20170101T000000Z
DTSTART;VALUE=DATE:20180102
RRULE:FREQ=NEVER
SUMMARY:Broken
END:VEVENT
BEGIN:VEVENT
UID:nostart@gauss
DTSTAMP:20170101T000000Z
SUMMARY:No Start
END:VEVENT
END:VCALENDAR
`

func crlf(s string) []byte {
	return []byte(strings.ReplaceAll(s, "\n", "\r\n"))
}

func TestParse(t *testing.T) {
	events, err := Parse(crlf(testCalendar), nil)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if len(events) != 4 {
		t.Fatalf("Parse() = %d events, want 4", len(events))
	}

	christmas := events[1]
	if christmas.Summary != "Christmas" || christmas.Days != 2 || christmas.Rule != "FREQ=YEARLY" {
		t.Errorf("christmas event = %+v", christmas)
	}
	if len(christmas.ExDates) != 1 || christmas.ExDates[0].String() != "2019-12-25" {
		t.Errorf("christmas exdates = %v", christmas.ExDates)
	}
	if events[2].Rule != "" || events[2].Start.String() != "2018-06-01" {
		t.Errorf("company event = %+v", events[2])
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(nil, nil); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("Parse(nil) error = %v, want CONFIG_ERROR", err)
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.ics"), nil); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("ParseFile(missing) error = %v, want CONFIG_ERROR", err)
	}
}

func TestExpand(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Format: mdwlog.FormatJSON, Output: &buf})

	events, err := Parse(crlf(testCalendar), logger)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cal, err := Expand(events, Options{
		From:   timex.NewDate(2017, time.January, 1),
		To:     timex.NewDate(2019, time.December, 31),
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("Expand() unexpected error: %v", err)
	}

	var got []string
	for _, h := range cal.Holidays() {
		got = append(got, h.Date.String()+" "+h.Name)
	}
	want := []string{
		"2017-01-01 New Year",
		"2017-12-25 Christmas",
		"2017-12-26 Christmas",
		"2018-01-01 New Year",
		"2018-06-01 Company Day",
		"2018-12-25 Christmas",
		"2018-12-26 Christmas",
		"2019-01-01 New Year",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}

	if cal.Set().Len() != len(want) {
		t.Errorf("Set().Len() = %d, want %d", cal.Set().Len(), len(want))
	}
	if !strings.Contains(buf.String(), "broken@gauss") {
		t.Errorf("expected a warning for the broken rule, log was: %s", buf.String())
	}
}

func TestExpandClipsMultiDayHolidays(t *testing.T) {
	events := []Event{{
		Summary: "Winter Break",
		Start:   timex.NewDate(2017, time.December, 30),
		Days:    4,
	}}

	cal, err := Expand(events, Options{
		From: timex.NewDate(2018, time.January, 1),
		To:   timex.NewDate(2018, time.January, 31),
	})
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	dates := cal.Set().Dates()
	if len(dates) != 2 || dates[0].String() != "2018-01-01" || dates[1].String() != "2018-01-02" {
		t.Errorf("Expand() dates = %v, want 2018-01-01 and 2018-01-02", dates)
	}
}

func TestExpandInvalidRange(t *testing.T) {
	_, err := Expand(nil, Options{
		From: timex.NewDate(2018, time.January, 1),
		To:   timex.NewDate(2017, time.January, 1),
	})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Expand() error = %v, want INVALID_INPUT", err)
	}
}

func TestLoadAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.ics")
	if err := os.WriteFile(path, crlf(testCalendar), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	from, to := YearRange(2018, 0)
	cal, err := Load(path, Options{From: from, To: to})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if names := cal.Lookup(timex.NewDateTime(2018, time.December, 26, 9, 0, 0, 0)); len(names) != 1 || names[0] != "Christmas" {
		t.Errorf("Lookup(2018-12-26) = %v, want [Christmas]", names)
	}
	if names := cal.Lookup(timex.NewDate(2018, time.December, 27)); names != nil {
		t.Errorf("Lookup(2018-12-27) = %v, want none", names)
	}

	bc := timex.BusinessCalendar{Weekends: timex.DefaultWeekends, Holidays: cal.Set()}
	if bc.IsBusinessDay(timex.NewDate(2018, time.June, 1)) {
		t.Error("2018-06-01 should be a holiday")
	}
}

func TestYearRange(t *testing.T) {
	from, to := YearRange(2026, 5)
	if from.String() != "2021-01-01" || to.String() != "2031-12-31" {
		t.Errorf("YearRange(2026, 5) = %s..%s", from, to)
	}
}

func TestNilCalendar(t *testing.T) {
	var cal *Calendar
	if cal.Set().Len() != 0 || cal.Holidays() != nil || cal.Lookup(timex.NewDate(2018, 1, 1)) != nil {
		t.Error("nil calendar should be empty")
	}
}
