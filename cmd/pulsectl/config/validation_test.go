package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		output  string
		wantErr bool
	}{
		{"table", false},
		{"json", false},
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			Global.Output = tt.output
			err := ValidateOutputFormat()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRoomImportFlags(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		retries int
		wantErr bool
	}{
		{"defaults", DefaultRate, DefaultRetries, false},
		{"minimum rate", 1, 1, false},
		{"maximum rate", MaxRate, 1, false},
		{"rate at upstream limit", 15, 1, true},
		{"zero rate", 0, 1, true},
		{"negative rate", -1, 1, true},
		{"zero retries", DefaultRate, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Room.Rate = tt.rate
			Room.Retries = tt.retries
			err := ValidateRoomImportFlags()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// withEnv sets credentials in the process environment for one test.
func withEnv(t *testing.T, orgID, token string) {
	t.Helper()
	t.Setenv(EnvOrgID, orgID)
	t.Setenv(EnvBearerToken, token)
}

func TestLoadCredentialsFromEnvironment(t *testing.T) {
	withEnv(t, "org-123", "token-abc")
	Global.EnvFile = filepath.Join(t.TempDir(), "absent.env")
	Global.OrgID = ""

	require.NoError(t, LoadCredentials())
	assert.Equal(t, "org-123", Global.OrgID)
	assert.Equal(t, "token-abc", Global.Token)
}

func TestLoadCredentialsFromEnvFile(t *testing.T) {
	withEnv(t, "", "")
	os.Unsetenv(EnvOrgID)
	os.Unsetenv(EnvBearerToken)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvOrgID + "=org-from-file\n" + EnvBearerToken + "=token-from-file\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	Global.EnvFile = envFile
	Global.OrgID = ""

	require.NoError(t, LoadCredentials())
	assert.Equal(t, "org-from-file", Global.OrgID)
	assert.Equal(t, "token-from-file", Global.Token)
}

func TestLoadCredentialsFlagOverridesEnv(t *testing.T) {
	withEnv(t, "org-env", "token-abc")
	Global.EnvFile = filepath.Join(t.TempDir(), "absent.env")
	Global.OrgID = "org-flag"

	require.NoError(t, LoadCredentials())
	assert.Equal(t, "org-flag", Global.OrgID, "--org flag must win over NEAT_ORG_ID")
}

func TestLoadCredentialsRejectsPlaceholders(t *testing.T) {
	withEnv(t, placeholderOrgID, placeholderToken)
	Global.EnvFile = filepath.Join(t.TempDir(), "absent.env")
	Global.OrgID = ""

	err := LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholder")
}

func TestLoadCredentialsMissingEverything(t *testing.T) {
	withEnv(t, "", "")
	os.Unsetenv(EnvOrgID)
	os.Unsetenv(EnvBearerToken)
	Global.EnvFile = filepath.Join(t.TempDir(), "absent.env")
	Global.OrgID = ""

	err := LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
