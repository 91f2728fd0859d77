// Package handlers provides command handler functions for pulsectl operations.
//
// This file contains region-related command handlers for listing and creating
// regions in the Pulse org hierarchy. Handlers validate input locally, call
// the Pulse API through the shared client, and route results through the
// display package for consistent table and JSON output.
package handlers

import (
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/client"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/config"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/display"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/utils"
	"github.com/pulse-tools/pulsectl/internal/logging"
	"github.com/pulse-tools/pulsectl/internal/validate"
	"github.com/spf13/cobra"
)

// HandleRegionList handles the region ls subcommand, fetching all regions
// in the organization and displaying them sorted by ID. Supports watch mode
// for live updates during provisioning sessions.
func HandleRegionList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	fetchAndDisplay := func() error {
		apiClient := client.CreateAPIClient()
		regions, err := apiClient.ListRegions()
		if err != nil {
			return err
		}
		display.DisplayRegions(regions)
		return nil
	}

	return utils.RunWithWatch(fetchAndDisplay, config.Region.Watch)
}

// HandleRegionCreate handles the region create subcommand. The name is
// validated locally before any API call so obviously bad input never
// spends a request.
func HandleRegionCreate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	name := args[0]
	if err := validate.ResourceNameFormat(name, "region"); err != nil {
		logging.Error("Invalid region name: %v", err)
		return err
	}

	logging.Info("Creating region '%s'", name)

	apiClient := client.CreateAPIClient()
	region, err := apiClient.CreateRegion(name)
	if err != nil {
		return err
	}

	display.DisplayRegions([]client.Region{*region})
	logging.Success("Region '%s' created with ID %d", region.Name, region.ID)
	return nil
}
