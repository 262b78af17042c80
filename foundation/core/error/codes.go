// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by gauss. Codes classify every
//              failure of the date/time toolkit so callers can react to the
//              kind of input error without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-09-14 v0.2.0: Replaced platform codes with date/time codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Modify patterns and field codes
	CodeMalformedPattern Code = "MALFORMED_PATTERN"
	CodeUnknownFieldCode Code = "UNKNOWN_FIELD_CODE"
	CodeUnsupportedField Code = "UNSUPPORTED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Formats and parsing
	CodeUnrecognizedFormat   Code = "UNRECOGNIZED_FORMAT"
	CodeInvalidFormatPattern Code = "INVALID_FORMAT_PATTERN"
	CodeParseError           Code = "PARSE_ERROR"

	// Calendars and zones
	CodeInvalidTimeZone   Code = "INVALID_TIME_ZONE"
	CodeInvalidWeekendSet Code = "INVALID_WEEKEND_SET"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMalformedPattern, CodeUnknownFieldCode, CodeUnsupportedField, CodeValueOutOfRange,
		CodeUnrecognizedFormat, CodeInvalidFormatPattern, CodeParseError,
		CodeInvalidTimeZone, CodeInvalidWeekendSet,
		CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedPattern, CodeUnknownFieldCode, CodeUnsupportedField, CodeValueOutOfRange:
		return "modify"
	case CodeUnrecognizedFormat, CodeInvalidFormatPattern, CodeParseError:
		return "format"
	case CodeInvalidTimeZone, CodeInvalidWeekendSet:
		return "calendar"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
