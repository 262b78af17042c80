// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Caller-input errors of the
//              toolkit are low severity; configuration and internal errors
//              rank higher so the logger can pick a matching level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-09-14 v0.2.0: Severity mapping for date/time codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as broken configuration
	SeverityHigh

	// SeverityCritical indicates an error that makes the toolkit unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound,
		CodeMalformedPattern, CodeUnknownFieldCode, CodeUnsupportedField, CodeValueOutOfRange,
		CodeUnrecognizedFormat, CodeInvalidFormatPattern, CodeParseError,
		CodeInvalidTimeZone, CodeInvalidWeekendSet:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
