// Package main provides the entry point for the Pulse CLI tool (pulsectl).
//
// This package implements the main executable for managing a Neat Pulse
// organization's region/location/room hierarchy from the command line.
// The CLI provides resource commands for inspecting and creating org
// resources plus a rate-limited bulk import path for provisioning rooms
// from CSV files.
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to API operations
// 4. Configuration validation and credential loading via PersistentPreRunE
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns for intuitive org management with
// consistent interfaces and comprehensive help text.
package main

import (
	"os"

	"github.com/pulse-tools/pulsectl/cmd/pulsectl/commands"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/config"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupRegionCommands()
	commands.SetupLocationCommands()
	commands.SetupRoomCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.BaseURL, &config.Global.EnvFile,
		&config.Global.OrgID, &config.Global.LogLevel, &config.Global.Timeout,
		&config.Global.Verbose, &config.Global.Output,
		config.DefaultBaseURL, config.DefaultEnvFile, config.DefaultTimeout)

	// Setup region command flags
	regionLsCmd, _ := commands.GetRegionCommands()
	commands.SetupRegionFlags(regionLsCmd, &config.Region.Watch)

	// Setup location command flags
	locationLsCmd, locationCreateCmd := commands.GetLocationCommands()
	commands.SetupLocationFlags(locationLsCmd, locationCreateCmd,
		&config.Location.Watch, &config.Location.RegionID)

	// Setup room command flags
	roomImportCmd := commands.GetRoomCommands()
	commands.SetupRoomFlags(roomImportCmd, &config.Room.Rate, &config.Room.Retries,
		&config.Room.DryRun, config.DefaultRate, config.DefaultRetries)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	regionLsCmd, regionCreateCmd := commands.GetRegionCommands()
	locationLsCmd, locationCreateCmd := commands.GetLocationCommands()
	roomImportCmd := commands.GetRoomCommands()

	// Assign handlers
	regionLsCmd.RunE = handlers.HandleRegionList
	regionCreateCmd.RunE = handlers.HandleRegionCreate
	locationLsCmd.RunE = handlers.HandleLocationList
	locationCreateCmd.RunE = handlers.HandleLocationCreate
	roomImportCmd.RunE = handlers.HandleRoomImport
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
