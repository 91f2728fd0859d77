// Package config provides configuration management for the pulsectl CLI.
package config

import (
	"fmt"
	"time"

	"github.com/pulse-tools/pulsectl/internal/logging"
	"github.com/pulse-tools/pulsectl/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags and resolves credentials
// before running any command. Wired as the root command's PersistentPreRunE
// so every subcommand fails fast on bad configuration instead of mid-flight.
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s': %v", Global.LogLevel, err)
		return err
	}

	if err := ValidateTimeout(); err != nil {
		return err
	}

	if err := ValidateBaseURL(); err != nil {
		return err
	}

	return LoadCredentials()
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateTimeout validates the --timeout flag
func ValidateTimeout() error {
	if err := validate.ValidatePositiveTimeout(time.Duration(Global.Timeout)*time.Second, "timeout"); err != nil {
		logging.Error("Invalid timeout %d: %v", Global.Timeout, err)
		return fmt.Errorf("timeout must be a positive number of seconds")
	}
	return nil
}

// ValidateBaseURL validates the --api flag
func ValidateBaseURL() error {
	if err := validate.ValidateBaseURL(Global.BaseURL); err != nil {
		logging.Error("Invalid API base URL '%s': %v", Global.BaseURL, err)
		return fmt.Errorf("invalid API base URL - expected format: https://host (e.g., %s)", DefaultBaseURL)
	}
	return nil
}

// ValidateRoomImportFlags validates the room import command flags. The rate
// cap stays strictly below the API's documented 15 requests per second so
// an import can never be configured to exceed the upstream limit.
func ValidateRoomImportFlags() error {
	if Room.Rate < 1 || Room.Rate > MaxRate {
		logging.Error("Invalid rate %d - must be between 1 and %d", Room.Rate, MaxRate)
		return fmt.Errorf("rate must be between 1 and %d requests per second", MaxRate)
	}
	if Room.Retries < 1 {
		logging.Error("Invalid retries %d - must be at least 1", Room.Retries)
		return fmt.Errorf("retries must be at least 1")
	}
	return nil
}
