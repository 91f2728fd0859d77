// Package handlers provides command handler functions for pulsectl operations.
//
// This file contains location-related command handlers for listing and
// creating locations. Locations are the parents of rooms, so the ls handler
// is the usual way operators look up the numeric IDs referenced by room
// import CSV files.
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

// HandleLocationList handles the location ls subcommand, fetching all
// locations in the organization and displaying them sorted by ID with
// their parent region. Supports watch mode for live updates.
func HandleLocationList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	fetchAndDisplay := func() error {
		apiClient := client.CreateAPIClient()
		locations, err := apiClient.ListLocations()
		if err != nil {
			return err
		}
		display.DisplayLocations(locations)
		return nil
	}

	return utils.RunWithWatch(fetchAndDisplay, config.Location.Watch)
}

// HandleLocationCreate handles the location create subcommand. The name and
// parent region ID are validated locally before any API call.
func HandleLocationCreate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	name := args[0]
	if err := validate.ResourceNameFormat(name, "location"); err != nil {
		logging.Error("Invalid location name: %v", err)
		return err
	}
	if err := validate.ValidateField(config.Location.RegionID, "required,min=1"); err != nil {
		logging.Error("Invalid region ID %d: %v", config.Location.RegionID, err)
		return err
	}

	logging.Info("Creating location '%s' in region %d", name, config.Location.RegionID)

	apiClient := client.CreateAPIClient()
	location, err := apiClient.CreateLocation(name, config.Location.RegionID)
	if err != nil {
		return err
	}

	display.DisplayLocations([]client.Location{*location})
	logging.Success("Location '%s' created with ID %d", location.Name, location.ID)
	return nil
}
