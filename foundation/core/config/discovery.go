// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches the usual places for a gauss configuration file and
//              falls back to defaults plus environment when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-09-14 v0.2.0: gauss search paths, optional discovery

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the gauss search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "gauss"))
	}
	paths = append(paths, "/etc/gauss")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"gauss"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "GAUSS",
	}
}

// Discover loads the first configuration file found. Without a file it
// returns a configuration holding only the defaults, unless Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	if path, ok := FindConfigFile(options); ok {
		return LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
	}

	if options.Required {
		return nil, mdwerror.New("no configuration file found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", ListPossibleConfigFiles(options))
	}

	return New(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile returns the first existing configuration file
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns all candidate configuration file paths in
// search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
