// Package logging provides centralized log level validation for pulsectl.
//
// This file defines the canonical set of valid log levels used by the CLI
// flag processing. Centralizing validation keeps the flag handling and the
// logger itself in agreement about what a level string may be.
//
// All log level strings are case-sensitive and must be uppercase to match
// the logging system's internal level handling.
package logging

import "fmt"

// ValidLogLevels defines the canonical set of supported log levels.
// This map is the single source of truth for log level validation.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if invalid.
// Used by CLI flag processing to catch invalid levels early with a clear message.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
