// Package log provides structured logging for gauss.
//
// Package: log
// Title: gauss Structured Logging
// Description: This package implements a small structured logger with log
//              levels, contextual fields, correlation ids and several output
//              formats. Errors from the gauss error package are logged with
//              their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-09-14 v0.2.0: Dropped async delivery and request/user context, sorted
//                       field output, operation timers for the date/time service
//
// Usage:
//
//	import mdwlog "github.com/msto63/gauss/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelInfo).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithField("component", "timex")
//
//	logger.Debug("pattern parsed", mdwlog.Fields{"pattern": "Y+1:D=1", "ops": 2})
//
//	timer := logger.StartTimer("holidays.load")
//	// ... expand the calendar
//	timer.Stop()
package log
