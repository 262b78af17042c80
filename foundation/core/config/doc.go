// Package config loads gauss configuration from TOML or YAML files with
// environment variable overrides.
//
// Package: config
// Title: gauss Configuration
// Description: Configuration values are addressed with dot notation
//              ("calendar.zone"). When an environment prefix is set, the
//              variable PREFIX_CALENDAR_ZONE overrides the file value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-09-14 v0.2.0: Reduced to loading, discovery and typed getters
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("gauss.toml", config.LoadOptions{
//		EnvPrefix: "GAUSS",
//		Defaults: map[string]interface{}{
//			"calendar": map[string]interface{}{"holiday_years": 5},
//		},
//	})
//	if err != nil {
//		return err
//	}
//	weekends := cfg.GetStringSlice("calendar.weekends", []string{"SATURDAY", "SUNDAY"})
package config
