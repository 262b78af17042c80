// File: errors.go
// Title: Date/Time Error Taxonomy
// Description: Sentinel errors of the timex package. Every failure returned
//              by timex carries the code of one of these sentinels so callers
//              can match it with errors.Is.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.2.0: Initial sentinel set

package timex

import (
	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

var (
	// ErrMalformedPattern reports a modify pattern whose segment shape is wrong
	ErrMalformedPattern = mdwerror.New("malformed modify pattern").WithCode(mdwerror.CodeMalformedPattern)

	// ErrUnknownFieldCode reports a field code that is not in the field table
	ErrUnknownFieldCode = mdwerror.New("unknown field code").WithCode(mdwerror.CodeUnknownFieldCode)

	// ErrUnsupportedField reports a field that does not exist on the value's kind
	ErrUnsupportedField = mdwerror.New("unsupported field").WithCode(mdwerror.CodeUnsupportedField)

	// ErrValueOutOfRange reports a result outside the representable range
	ErrValueOutOfRange = mdwerror.New("value out of range").WithCode(mdwerror.CodeValueOutOfRange)

	// ErrUnrecognizedFormat reports input whose format cannot be detected
	ErrUnrecognizedFormat = mdwerror.New("unrecognized date/time format").WithCode(mdwerror.CodeUnrecognizedFormat)

	// ErrInvalidFormatPattern reports a format pattern that cannot be translated
	ErrInvalidFormatPattern = mdwerror.New("invalid format pattern").WithCode(mdwerror.CodeInvalidFormatPattern)

	// ErrParse reports text that does not match a format pattern
	ErrParse = mdwerror.New("parse error").WithCode(mdwerror.CodeParseError)

	// ErrInvalidTimeZone reports an unknown zone id
	ErrInvalidTimeZone = mdwerror.New("invalid time zone").WithCode(mdwerror.CodeInvalidTimeZone)

	// ErrInvalidWeekendSet reports a weekend set that leaves no business day
	ErrInvalidWeekendSet = mdwerror.New("invalid weekend set").WithCode(mdwerror.CodeInvalidWeekendSet)
)

// newError creates a concrete error carrying the code of sentinel
func newError(sentinel *mdwerror.Error, operation, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(sentinel.Code()).
		WithOperation("timex." + operation)
}
