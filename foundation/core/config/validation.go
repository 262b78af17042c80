// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against per-key rules: type,
//              bounds, patterns and allowed values. Environment overrides
//              are validated in place of file values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-16 v0.2.0: Read-only validation returning one config error,
//                       environment values, allowed value lists

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the key must be present
	Type     string      // Expected type: "string", "int", "bool" or "[]string"
	Min      interface{} // Minimum value (int) or length (string, slice)
	Max      interface{} // Maximum value (int) or length (string, slice)
	Pattern  string      // Regex a string value must match
	OneOf    []string    // Allowed string values or slice items, case-insensitive
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Validate checks the configuration against rules. All violations are
// reported together in one error with code CodeConfigError.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) == 0 {
		return nil
	}

	return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Validate").
		WithDetail("errors", problems)
}

// lookup returns the environment override of key or its file value
func (c *Config) lookup(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}
	return c.getValue(key)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.lookup(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	value, err := normalizeType(key, value, rule.Type)
	if err != nil {
		return err
	}
	if err := validateBounds(key, value, rule); err != nil {
		return err
	}
	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}
	if len(rule.OneOf) > 0 {
		return validateOneOf(key, value, rule.OneOf)
	}
	return nil
}

// normalizeType converts value to the Go type of expectedType. TOML
// integers arrive as int64, YAML integers as int and environment values
// as strings.
func normalizeType(key string, value interface{}, expectedType string) (interface{}, error) {
	switch expectedType {
	case "":
		return value, nil

	case "string":
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("field '%s' must be a string, got %T", key, value)

	case "int":
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			if v == float64(int64(v)) {
				return int(v), nil
			}
			return nil, fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, nil
			}
		}
		return nil, fmt.Errorf("field '%s' must be an integer, got '%v'", key, value)

	case "bool":
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b, nil
			}
		}
		return nil, fmt.Errorf("field '%s' must be a boolean, got '%v'", key, value)

	case "[]string":
		switch v := value.(type) {
		case []string:
			return v, nil
		case []interface{}:
			out := make([]string, len(v))
			for i, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("field '%s' item %d must be a string, got %T", key, i+1, item)
				}
				out[i] = s
			}
			return out, nil
		case string:
			var out []string
			for _, p := range strings.Split(v, ",") {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out, nil
		}
		return nil, fmt.Errorf("field '%s' must be a slice of strings, got %T", key, value)

	default:
		return nil, fmt.Errorf("unknown validation type: %s", expectedType)
	}
}

// validateBounds checks integer values and string or slice lengths
func validateBounds(key string, value interface{}, rule ValidationRule) error {
	n, what := 0, "value"
	switch v := value.(type) {
	case int:
		n = v
	case string:
		n, what = len(v), "length"
	case []string:
		n, what = len(v), "length"
	default:
		return nil
	}

	if lo, ok := rule.Min.(int); ok && n < lo {
		return fmt.Errorf("field '%s' %s %d is less than minimum %d", key, what, n, lo)
	}
	if hi, ok := rule.Max.(int); ok && n > hi {
		return fmt.Errorf("field '%s' %s %d is greater than maximum %d", key, what, n, hi)
	}
	return nil
}

func validatePattern(key string, value interface{}, pattern string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
	}
	if !regex.MatchString(s) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, pattern)
	}
	return nil
}

func validateOneOf(key string, value interface{}, allowed []string) error {
	var items []string
	switch v := value.(type) {
	case string:
		items = []string{v}
	case []string:
		items = v
	default:
		return fmt.Errorf("field '%s' allowed values require strings", key)
	}

	for _, item := range items {
		found := false
		for _, a := range allowed {
			if strings.EqualFold(item, a) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("field '%s' value '%s' is not one of %s", key, item, strings.Join(allowed, ", "))
		}
	}
	return nil
}
