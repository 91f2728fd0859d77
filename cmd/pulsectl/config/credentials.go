// Package config provides configuration management for the pulsectl CLI.
// This file handles credential loading from .env files and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pulse-tools/pulsectl/internal/logging"
)

// Placeholder values shipped in .env.template; treated as unset.
const (
	placeholderOrgID = "your_organization_id_here"
	placeholderToken = "your_bearer_token_here"
)

// LoadCredentials resolves the organization ID and bearer token from the
// .env file and process environment, honoring flag overrides. The env file
// is optional when both variables already exist in the environment, which
// keeps CI usage working without a file on disk.
func LoadCredentials() error {
	if _, err := os.Stat(Global.EnvFile); err == nil {
		// godotenv does not override variables already exported in the
		// environment, so explicit exports win over file contents.
		if err := godotenv.Load(Global.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file '%s': %w", Global.EnvFile, err)
		}
		logging.Debug("Loaded credentials from %s", Global.EnvFile)
	} else if os.Getenv(EnvOrgID) == "" || os.Getenv(EnvBearerToken) == "" {
		logging.Error("Env file '%s' not found and %s/%s are not set", Global.EnvFile, EnvOrgID, EnvBearerToken)
		return fmt.Errorf("env file '%s' not found - copy .env.template to .env and fill in your credentials", Global.EnvFile)
	}

	// --org overrides NEAT_ORG_ID
	if Global.OrgID == "" {
		Global.OrgID = os.Getenv(EnvOrgID)
	}
	Global.Token = os.Getenv(EnvBearerToken)

	if Global.OrgID == "" || Global.Token == "" {
		return fmt.Errorf("missing required environment variables - ensure %s and %s are set in your .env file", EnvOrgID, EnvBearerToken)
	}

	if Global.OrgID == placeholderOrgID || Global.Token == placeholderToken {
		return fmt.Errorf("placeholder credentials detected - update the .env file with your actual credentials")
	}

	return nil
}
