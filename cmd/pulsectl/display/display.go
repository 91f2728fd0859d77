// Package display provides output formatting and display functions for pulsectl.
//
// This package handles all user-facing output formatting including table and
// JSON output for regions, locations, and bulk import results. It provides
// consistent formatting across all pulsectl commands with support for different
// output formats and proper error handling for display operations.
//
// The display functions handle:
// - Region and location listings sorted by numeric ID
// - Bulk import progress and per-row outcome reporting
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect global configuration for output format while
// maintaining clean separation from business logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pulse-tools/pulsectl/cmd/pulsectl/client"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/config"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/utils"
	"github.com/pulse-tools/pulsectl/internal/logging"
)

// printJSON writes any value as indented JSON to stdout.
func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Println("Error encoding JSON output")
	}
}

// DisplayRegions displays the organization's regions in tabular or JSON
// format, sorted by numeric ID ascending. Handles empty result sets
// gracefully for both output modes.
func DisplayRegions(regions []client.Region) {
	if len(regions) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No regions found")
		}
		return
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].ID < regions[j].ID
	})

	if config.Global.Output == "json" {
		printJSON(regions)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME")
	for _, region := range regions {
		fmt.Fprintf(w, "%d\t%s\n", region.ID, region.Name)
	}
}

// DisplayLocations displays the organization's locations in tabular or JSON
// format, sorted by numeric ID ascending. The REGION column prefers the
// nested region name over the bare region ID when the API provides one.
func DisplayLocations(locations []client.Location) {
	if len(locations) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No locations found")
		}
		return
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].ID < locations[j].ID
	})

	if config.Global.Output == "json" {
		printJSON(locations)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tREGION")
	for _, location := range locations {
		fmt.Fprintf(w, "%d\t%s\t%s\n", location.ID, location.Name, location.RegionRef())
	}
}

// ImportRowOutcome is one row's outcome in the bulk import report: the CSV
// row number (1-based, excluding the header), what happened, and the
// enrollment code when the row ended up provisioned.
type ImportRowOutcome struct {
	RowNumber int    `json:"row"`
	Name      string `json:"name"`
	Status    string `json:"status"` // created, skipped, failed
	DEC       string `json:"dec,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ImportReport aggregates a completed bulk import for the final summary.
type ImportReport struct {
	Total   int                `json:"total"`
	Created int                `json:"created"`
	Skipped int                `json:"skipped"`
	Failed  int                `json:"failed"`
	Elapsed time.Duration      `json:"-"`
	Rows    []ImportRowOutcome `json:"rows"`
}

// DisplayImportProgress prints a single progress line after each submitted
// row, mirroring the row's outcome plus running elapsed/ETA estimates.
// Progress lines always go to the table-style output; JSON consumers get
// the final report instead.
func DisplayImportProgress(done, total int, outcome ImportRowOutcome, elapsed time.Duration) {
	if config.Global.Output == "json" {
		return
	}

	status := fmt.Sprintf("DEC: %s", outcome.DEC)
	if outcome.Status == "failed" {
		status = outcome.Reason
	}
	fmt.Printf("[%d/%d] %s - %s\n", done, total, outcome.Name, status)

	percentage := float64(done) / float64(total) * 100
	eta := "calculating..."
	if done > 0 && elapsed > 0 {
		perRow := elapsed / time.Duration(done)
		eta = utils.FormatDuration(perRow * time.Duration(total-done))
	}
	fmt.Printf("  Progress: %d/%d (%.1f%%) | Elapsed: %s | ETA: %s\n",
		done, total, percentage, utils.FormatDuration(elapsed), eta)
}

// DisplayImportReport prints the final bulk import summary in tabular or
// JSON format. The table form lists every non-created row so failures are
// visible without scrolling back through progress lines.
func DisplayImportReport(report ImportReport) {
	if config.Global.Output == "json" {
		printJSON(report)
		return
	}

	fmt.Println()
	fmt.Println("IMPORT SUMMARY")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total rows:\t%d\n", report.Total)
	fmt.Fprintf(w, "Created:\t%d\n", report.Created)
	fmt.Fprintf(w, "Skipped:\t%d\n", report.Skipped)
	fmt.Fprintf(w, "Failed:\t%d\n", report.Failed)
	fmt.Fprintf(w, "Elapsed:\t%s\n", utils.FormatDuration(report.Elapsed))
	w.Flush()

	// Verbose mode lists every row; otherwise only failures are detailed
	// so they are visible without scrolling back through progress lines.
	if config.Global.Verbose {
		fmt.Println()
		fmt.Println("ROWS")
		rw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer rw.Flush()
		fmt.Fprintln(rw, "ROW\tNAME\tSTATUS\tDEC\tREASON")
		for _, row := range report.Rows {
			fmt.Fprintf(rw, "%d\t%s\t%s\t%s\t%s\n",
				row.RowNumber, row.Name, row.Status, row.DEC, row.Reason)
		}
		return
	}

	if report.Failed == 0 {
		return
	}

	fmt.Println()
	fmt.Println("FAILED ROWS")
	fw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer fw.Flush()
	fmt.Fprintln(fw, "ROW\tNAME\tREASON")
	for _, row := range report.Rows {
		if row.Status != "failed" {
			continue
		}
		fmt.Fprintf(fw, "%d\t%s\t%s\n", row.RowNumber, row.Name, row.Reason)
	}
}
