// Package error provides structured error handling for gauss.
//
// Package: error
// Title: gauss Error Handling
// Description: This package implements a structured error type with error codes,
//              severities, operation names and details. The date/time toolkit
//              declares one sentinel per failure kind and matches them with
//              errors.Is, which compares codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-09-14 v0.2.0: Date/time codes and sentinel matching
//
// Usage:
//
//	import mdwerror "github.com/msto63/gauss/foundation/core/error"
//
//	// Declare a sentinel
//	var ErrParse = mdwerror.New("parse error").WithCode(mdwerror.CodeParseError)
//
//	// Return a concrete error carrying the same code
//	return mdwerror.New("text does not match pattern").
//		WithCode(mdwerror.CodeParseError).
//		WithDetail("pattern", pattern)
//
//	// Match by code
//	if errors.Is(err, ErrParse) {
//		// handle parse failures
//	}
package error
