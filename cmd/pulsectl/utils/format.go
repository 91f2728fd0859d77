// Package utils provides utility functions for the pulsectl CLI.
package utils

import (
	"fmt"
	"time"
)

// FormatDuration converts Go time.Duration values into human-readable string
// representations for CLI output display. Uses progressive time unit scaling
// to present durations in the most appropriate unit based on magnitude.
//
// Used in bulk import progress lines where elapsed time and ETA need to stay
// readable as an import runs from seconds into hours.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	} else {
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
