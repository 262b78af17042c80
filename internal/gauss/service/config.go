package service

import (
	"github.com/msto63/gauss/foundation/core/config"
	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/timex"
	"github.com/msto63/gauss/internal/gauss/holidays"
)

// Configuration keys
const (
	KeyWeekends     = "calendar.weekends"
	KeyHolidaysFile = "calendar.holidays_file"
	KeyHolidayYears = "calendar.holiday_years"
	KeyZone         = "calendar.zone"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// DefaultHolidayYears is the number of years expanded from a holiday file
// on each side of the current year
const DefaultHolidayYears = 5

// ConfigRules validates the calendar keys before they are used
var ConfigRules = config.ValidationRules{
	KeyWeekends:     {Type: "[]string", Max: 6},
	KeyHolidaysFile: {Type: "string"},
	KeyHolidayYears: {Type: "int", Min: 1, Max: 100},
	KeyZone:         {Type: "string", Pattern: `^[A-Za-z0-9_+\-/]*$`},
}

// Defaults returns the configuration defaults of gauss
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"calendar": map[string]interface{}{
			"weekends":      []interface{}{"SATURDAY", "SUNDAY"},
			"holiday_years": DefaultHolidayYears,
			"zone":          "",
			"holidays_file": "",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
}

// OptionsFromConfig validates the calendar keys against ConfigRules and
// builds service options from them. A holiday file is expanded for calendar.holiday_years years before and after the
// current year of clock.
func OptionsFromConfig(cfg *config.Config, clock Clock, logger *mdwlog.Logger) (Options, error) {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = mdwlog.Discard()
	}

	if err := cfg.Validate(ConfigRules); err != nil {
		return Options{}, mdwerror.Wrap(err, "invalid calendar configuration").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("service.OptionsFromConfig")
	}

	weekends, err := timex.ParseWeekends(cfg.GetStringSlice(KeyWeekends, []string{"SATURDAY", "SUNDAY"})...)
	if err != nil {
		return Options{}, mdwerror.Wrap(err, "invalid calendar.weekends").
			WithOperation("service.OptionsFromConfig")
	}
	cal := timex.BusinessCalendar{Weekends: weekends}

	opts := Options{
		Calendar:    &cal,
		DefaultZone: cfg.GetString(KeyZone),
		Clock:       clock,
		Logger:      logger,
	}

	path := cfg.GetString(KeyHolidaysFile)
	if path == "" {
		return opts, nil
	}

	years := cfg.GetInt(KeyHolidayYears, DefaultHolidayYears)
	from, to := holidays.YearRange(clock.Now().UTC().Year(), years)
	hc, err := holidays.Load(path, holidays.Options{From: from, To: to, Logger: logger})
	if err != nil {
		return Options{}, err
	}

	cal.Holidays = hc.Set()
	opts.Holidays = hc
	logger.Info("holiday calendar loaded", mdwlog.Fields{
		"file":     path,
		"from":     from.String(),
		"to":       to.String(),
		"holidays": cal.Holidays.Len(),
	})
	return opts, nil
}
