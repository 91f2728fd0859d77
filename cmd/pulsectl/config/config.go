// Package config provides configuration management for the pulsectl CLI.
package config

import "github.com/pulse-tools/pulsectl/internal/version"

const (
	// DefaultBaseURL is the production Pulse API endpoint.
	DefaultBaseURL = "https://api.pulse.neat.no"

	// DefaultEnvFile is the credentials file loaded at startup.
	DefaultEnvFile = ".env"

	// DefaultTimeout is the per-request HTTP timeout in seconds.
	DefaultTimeout = 30

	// DefaultRate is the bulk-import request cap per second. The API
	// allows 15/s per integration token; 10/s stays safely below it.
	DefaultRate = 10

	// MaxRate bounds the --rate flag below the documented 15/s limit.
	MaxRate = 14

	// DefaultRetries is the bulk-import attempt cap per row for HTTP 429.
	DefaultRetries = 5
)

// Environment variables read from the .env file or process environment.
const (
	EnvOrgID       = "NEAT_ORG_ID"
	EnvBearerToken = "NEAT_BEARER_TOKEN"
)

// Version is the current pulsectl CLI version from the centralized version package
var Version = version.PulsectlVersion

// Global holds the global CLI configuration
var Global struct {
	BaseURL  string // Pulse API base URL
	EnvFile  string // Path to the .env credentials file
	OrgID    string // Organization ID (flag override or NEAT_ORG_ID)
	Token    string // Bearer token (NEAT_BEARER_TOKEN, never a flag)
	LogLevel string // Log level for CLI operations
	Timeout  int    // HTTP request timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Region holds the region command configuration
var Region struct {
	Watch bool // Enable watch mode for live updates
}

// Location holds the location command configuration
var Location struct {
	Watch    bool // Enable watch mode for live updates
	RegionID int  // Region ID for location create
}

// Room holds the room command configuration
var Room struct {
	Rate    int  // Max requests per second during bulk import
	Retries int  // Max attempts per row on HTTP 429
	DryRun  bool // Validate the CSV without calling the API
}
