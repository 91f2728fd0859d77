// Package commands provides the complete command tree implementation for pulsectl.
//
// This package defines the hierarchical command structure for the Pulse CLI
// tool, implementing a resource-based command architecture similar to kubectl.
// Commands are organized into logical groups matching the Pulse org hierarchy.
//
// COMMAND STRUCTURE:
//   - region: Region listing and creation (ls, create)
//   - location: Location listing and creation (ls, create)
//   - room: Bulk room provisioning from CSV files (import)
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting for reliable org management operations.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "pulsectl",
	Short: "CLI tool for managing Neat Pulse regions, locations, and rooms",
	Long: `Pulse CLI (pulsectl) is a command-line tool for managing the
region/location/room hierarchy of a Neat Pulse organization.

Similar to kubectl for Kubernetes, pulsectl lets you inspect and create
org resources, and bulk-provision rooms from a CSV file with rate-limited
submission that respects the Pulse API's request budget.`,
	SilenceUsage: true,
	Example: `  # List regions
  pulsectl region ls

  # Create a region
  pulsectl region create EMEA

  # List locations with live updates
  pulsectl location ls --watch

  # Create a location under region 7
  pulsectl location create --region=7 "Oslo HQ"

  # Bulk-create rooms from a CSV file (writes DEC codes back into the file)
  pulsectl room import rooms.csv

  # Validate a CSV without calling the API
  pulsectl room import rooms.csv --dry-run

  # Output in JSON format
  pulsectl --output=json region ls
  pulsectl -o json location ls`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(regionCmd)
	RootCmd.AddCommand(locationCmd)
	RootCmd.AddCommand(roomCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, baseURLPtr *string, envFilePtr *string,
	orgIDPtr *string, logLevelPtr *string, timeoutPtr *int, verbosePtr *bool,
	outputPtr *string, defaultBaseURL, defaultEnvFile string, defaultTimeout int) {
	rootCmd.PersistentFlags().StringVar(baseURLPtr, "api", defaultBaseURL,
		"Pulse API base URL")
	rootCmd.PersistentFlags().StringVar(envFilePtr, "env-file", defaultEnvFile,
		"Path to the credentials file")
	rootCmd.PersistentFlags().StringVar(orgIDPtr, "org", "",
		"Organization ID (overrides NEAT_ORG_ID)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", defaultTimeout,
		"HTTP request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
