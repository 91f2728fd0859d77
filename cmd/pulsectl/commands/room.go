// Package commands contains all CLI command definitions for pulsectl.
//
// This file implements the bulk room provisioning command. Room creation is
// the rate-limited bulk path of the CLI: a CSV file drives one API request
// per row, paced below the Pulse API's request budget, and the file is
// rewritten in place with the enrollment code (DEC) of each created room.
package commands

import (
	"fmt"

	"github.com/pulse-tools/pulsectl/internal/logging"
	"github.com/spf13/cobra"
)

// Room command (parent command for room operations)
var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Manage rooms in the organization",
	Long: `Commands for managing rooms in the Neat Pulse organization.

Rooms are provisioned in bulk from a CSV file. Each created room receives
a device enrollment code (DEC) which is written back into the file so the
codes can be distributed to installers.`,
}

// Room import command
var roomImportCmd = &cobra.Command{
	Use:   "import CSV_FILE [flags]",
	Short: "Bulk-create rooms from a CSV file",
	Long: `Bulk-create rooms from a CSV file and write enrollment codes back.

The CSV must have a header row with at least the 'locationId' and 'name'
columns (any order, extra columns are preserved). Rows that already carry
a DEC value are skipped, and rows that fail validation are reported
without any API call.

Requests are paced with a sliding one-second window so the import never
exceeds the configured rate, and HTTP 429 responses are retried with the
server's Retry-After hint before a row is marked failed. After the run
the same file is rewritten in place with a DEC column recording the
enrollment code for every created room.`,
	Example: `  # Import rooms at the default 10 requests/second
  pulsectl room import rooms.csv

  # Slow down for a shared integration token
  pulsectl room import rooms.csv --rate=5

  # Validate the file without calling the API
  pulsectl room import rooms.csv --dry-run`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 CSV file path, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (CSV file path)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupRoomCommands initializes room commands and their relationships
func SetupRoomCommands() {
	roomCmd.AddCommand(roomImportCmd)
}

// GetRoomCommands returns the room command structures for handler assignment
func GetRoomCommands() *cobra.Command {
	return roomImportCmd
}

// SetupRoomFlags configures flags for room commands
func SetupRoomFlags(importCmd *cobra.Command, ratePtr *int, retriesPtr *int,
	dryRunPtr *bool, defaultRate, defaultRetries int) {
	importCmd.Flags().IntVar(ratePtr, "rate", defaultRate,
		"Max requests per second (must stay below the API's 15/s limit)")
	importCmd.Flags().IntVar(retriesPtr, "retries", defaultRetries,
		"Max attempts per row on HTTP 429")
	importCmd.Flags().BoolVar(dryRunPtr, "dry-run", false,
		"Validate the CSV without calling the API")
}
