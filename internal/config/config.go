// Package config defines process configuration structures and loading.
//
// Conventions:
// - Provide New() returning a Config with defaults.
// - Load() layers defaults, optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"fmt"
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
)

// Config contains process configuration. Heuristic thresholds are kept
// as flat scalars here and converted to a model.Assumptions once at
// startup.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SpreadsheetID and SheetRange locate the raw form responses.
	SpreadsheetID string `koanf:"spreadsheet_id"`
	SheetRange    string `koanf:"sheet_range"`

	// CredentialsPath points at the service-account credentials JSON.
	CredentialsPath string `koanf:"credentials_path"`

	// CachePath stores the raw sheet response between runs;
	// CacheMaxAgeHours bounds how stale its newest row may be before a
	// live fetch replaces it. IgnoreCache forces a live fetch.
	CachePath        string `koanf:"cache_path"`
	CacheMaxAgeHours int    `koanf:"cache_max_age_hours"`
	IgnoreCache      bool   `koanf:"ignore_cache"`

	// Per-run toggles excluding an activity domain from processing.
	ExcludeGaming  bool `koanf:"exclude_gaming"`
	ExcludeAlcohol bool `koanf:"exclude_alcohol"`
	ExcludeSleep   bool `koanf:"exclude_sleep"`

	// Export settings for the batch binary.
	ExportDir    string `koanf:"export_dir"`
	ExportFormat string `koanf:"export_format"` // csv or parquet

	// Heuristic constants; see model.Assumptions for semantics.
	GamingEarliestDailyStart  string `koanf:"gaming_earliest_daily_start"`
	SleepStartHourNonNap      string `koanf:"sleep_start_hour_non_nap"`
	WakeAlarmHourThreshold    string `koanf:"wake_alarm_hour_threshold"`
	AvgDelayLoggedOnceMin     int    `koanf:"avg_delay_logged_once_min"`
	AvgDelayLoggedMultipleMin int    `koanf:"avg_delay_logged_multiple_min"`
	FutureRetroThresholdHours int    `koanf:"future_retro_threshold_hours"`
	LatestSleepHour           int    `koanf:"latest_sleep_hour"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                  "info",
		Addr:                      ":9080",
		SheetRange:                "Form Responses 1!A1:H",
		CredentialsPath:           "env/credentials.json",
		CachePath:                 "cache/data.json",
		CacheMaxAgeHours:          168,
		ExportDir:                 ".",
		ExportFormat:              "csv",
		GamingEarliestDailyStart:  "09:30",
		SleepStartHourNonNap:      "20:00",
		WakeAlarmHourThreshold:    "07:00",
		AvgDelayLoggedOnceMin:     20,
		AvgDelayLoggedMultipleMin: 5,
		FutureRetroThresholdHours: 2,
		LatestSleepHour:           7,
	}
}

// Assumptions converts the flat heuristic fields into the structure the
// pipeline components take.
func (c *Config) Assumptions() (model.Assumptions, error) {
	asmp := model.DefaultAssumptions()

	var err error
	if asmp.GamingEarliestDailyStart, err = model.ParseClockTime(c.GamingEarliestDailyStart); err != nil {
		return asmp, fmt.Errorf("%w: gaming_earliest_daily_start: %v", ErrInvalidConfig, err)
	}
	if asmp.SleepStartHourNonNap, err = model.ParseClockTime(c.SleepStartHourNonNap); err != nil {
		return asmp, fmt.Errorf("%w: sleep_start_hour_non_nap: %v", ErrInvalidConfig, err)
	}
	if asmp.WakeAlarmHourThreshold, err = model.ParseClockTime(c.WakeAlarmHourThreshold); err != nil {
		return asmp, fmt.Errorf("%w: wake_alarm_hour_threshold: %v", ErrInvalidConfig, err)
	}
	if c.LatestSleepHour < 0 || c.LatestSleepHour > 23 {
		return asmp, fmt.Errorf("%w: latest_sleep_hour out of range", ErrInvalidConfig)
	}
	asmp.AvgDelayIfLoggedOnce = time.Duration(c.AvgDelayLoggedOnceMin) * time.Minute
	asmp.AvgDelayIfLoggedMultiple = time.Duration(c.AvgDelayLoggedMultipleMin) * time.Minute
	asmp.FutureRetroThresholdHours = c.FutureRetroThresholdHours
	asmp.LatestSleepHour = c.LatestSleepHour
	return asmp, nil
}

// CacheMaxAge returns the cache freshness window as a duration.
func (c *Config) CacheMaxAge() time.Duration {
	return time.Duration(c.CacheMaxAgeHours) * time.Hour
}
