// Package commands contains all CLI command definitions for pulsectl.
//
// This file implements location management commands. Locations sit between
// regions and rooms in the Pulse org hierarchy and are the anchor for bulk
// room provisioning: every CSV row references a location by numeric ID.
package commands

import (
	"fmt"

	"github.com/pulse-tools/pulsectl/internal/logging"
	"github.com/spf13/cobra"
)

// Location command (parent command for location operations)
var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage locations in the organization",
	Long: `Commands for managing locations in the Neat Pulse organization.

Locations group rooms within a region. Use 'pulsectl location ls' to find
the numeric location IDs referenced by room import CSV files.`,
}

// Location list command
var locationLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all locations in the organization",
	Long: `List all locations in the Neat Pulse organization.

Locations are shown sorted by numeric ID in ascending order with their
parent region.`,
	Example: `  # List all locations
  pulsectl location ls

  # List locations with live updates
  pulsectl location ls --watch

  # Output in JSON format
  pulsectl -o json location ls`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Location create command
var locationCreateCmd = &cobra.Command{
	Use:   "create --region=REGION_ID NAME",
	Short: "Create a new location in a region",
	Long: `Create a new location under an existing region.

The parent region is required and must be given by numeric ID; use
'pulsectl region ls' to look it up. The location name is validated
before any API call.`,
	Example: `  # Create a location under region 7
  pulsectl location create --region=7 "Oslo HQ"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 location name, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (location name)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupLocationCommands initializes location commands and their relationships
func SetupLocationCommands() {
	locationCmd.AddCommand(locationLsCmd)
	locationCmd.AddCommand(locationCreateCmd)
}

// GetLocationCommands returns the location command structures for handler assignment
func GetLocationCommands() (*cobra.Command, *cobra.Command) {
	return locationLsCmd, locationCreateCmd
}

// SetupLocationFlags configures flags for location commands
func SetupLocationFlags(lsCmd, createCmd *cobra.Command, watchPtr *bool, regionIDPtr *int) {
	lsCmd.Flags().BoolVarP(watchPtr, "watch", "w", false, "Watch for live updates")

	createCmd.Flags().IntVar(regionIDPtr, "region", 0, "Parent region ID (required)")
	createCmd.MarkFlagRequired("region")
}
