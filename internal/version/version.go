// Package version provides centralized version information for pulsectl.
// The version string is surfaced through the --version flag and the HTTP
// User-Agent header so API-side logs can attribute traffic to a tool release.
// Follows semantic versioning (semver) conventions.

package version

// PulsectlVersion holds the current pulsectl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const PulsectlVersion = "0.1.0-dev"
