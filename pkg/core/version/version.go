// ============================================================================
// gauss - Datums- und Zeit-Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit and its parts
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for gauss
const (
	// Toolkit version
	Gauss = "0.2.0"

	// Component versions
	Timex    = "0.2.0"
	Holidays = "0.1.0"
	Service  = "0.1.0"
	CLI      = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "holidays":
		return Holidays
	case "service":
		return Service
	case "cli", "gauss-cli":
		return CLI
	default:
		return Gauss
	}
}
