// Package commands contains all CLI command definitions for pulsectl.
//
// This file implements region management commands for the Pulse org
// hierarchy. Regions are the top-level grouping under which locations
// and rooms are organized.
package commands

import (
	"fmt"

	"github.com/pulse-tools/pulsectl/internal/logging"
	"github.com/spf13/cobra"
)

// Region command (parent command for region operations)
var regionCmd = &cobra.Command{
	Use:   "region",
	Short: "Manage regions in the organization",
	Long: `Commands for managing regions in the Neat Pulse organization.

Regions are the top level of the org hierarchy. Every location belongs
to exactly one region, and every room belongs to a location.`,
}

// Region list command
var regionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all regions in the organization",
	Long: `List all regions in the Neat Pulse organization.

Regions are shown sorted by numeric ID in ascending order.`,
	Example: `  # List all regions
  pulsectl region ls

  # List regions with live updates
  pulsectl region ls --watch

  # Output in JSON format
  pulsectl -o json region ls`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Region create command
var regionCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new region in the organization",
	Long: `Create a new region in the Neat Pulse organization.

The region name must be non-empty and is validated before any API call.`,
	Example: `  # Create a region
  pulsectl region create EMEA

  # Names with spaces need quoting
  pulsectl region create "North America"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 region name, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (region name)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupRegionCommands initializes region commands and their relationships
func SetupRegionCommands() {
	regionCmd.AddCommand(regionLsCmd)
	regionCmd.AddCommand(regionCreateCmd)
}

// GetRegionCommands returns the region command structures for handler assignment
func GetRegionCommands() (*cobra.Command, *cobra.Command) {
	return regionLsCmd, regionCreateCmd
}

// SetupRegionFlags configures flags for region commands
func SetupRegionFlags(lsCmd *cobra.Command, watchPtr *bool) {
	lsCmd.Flags().BoolVarP(watchPtr, "watch", "w", false, "Watch for live updates")
}
