// Package handlers provides command handler functions for pulsectl operations.
//
// This file contains the bulk room import handler, the rate-limited bulk
// path of the CLI. The handler owns the orchestration: loading and
// classifying CSV rows, wiring the API client into the batch submitter,
// relaying progress, merging results back by row index, and rewriting the
// file with enrollment codes. Pacing and retry policy live in the batch
// package; row parsing lives in csvfile. Keeping the handler to glue makes
// both policies testable without a CLI in the loop.
package handlers

import (
	"fmt"
	"time"

	"github.com/pulse-tools/pulsectl/cmd/pulsectl/client"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/config"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/display"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/utils"
	"github.com/pulse-tools/pulsectl/internal/batch"
	"github.com/pulse-tools/pulsectl/internal/csvfile"
	"github.com/pulse-tools/pulsectl/internal/logging"
	"github.com/spf13/cobra"
)

// Per-row outcome status values used in import reports.
const (
	statusCreated = "created"
	statusSkipped = "skipped"
	statusFailed  = "failed"
	statusValid   = "valid" // dry-run only: row would be submitted
)

// HandleRoomImport handles the room import subcommand, bulk-creating rooms
// from a CSV file and writing the resulting enrollment codes back into it.
//
// Rows are classified before any network traffic: rows with validation
// errors fail immediately, rows that already carry a DEC are skipped, and
// only the remainder is submitted. The submitter preserves order within
// the submitted subset, so results merge back onto file rows by index.
// Returns an error when any row failed so scripts get a non-zero exit.
func HandleRoomImport(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidateRoomImportFlags(); err != nil {
		return err
	}

	file, err := csvfile.Load(args[0])
	if err != nil {
		return err
	}

	logging.Info("Loaded %d rows from %s", len(file.Rows), file.Path)

	outcomes := make([]display.ImportRowOutcome, len(file.Rows))
	var requests []batch.RoomRequest
	var submitRows []int // file row index per submitted request
	skipped, failed := 0, 0

	for i, row := range file.Rows {
		outcome := display.ImportRowOutcome{RowNumber: i + 1, Name: row.Name}
		switch {
		case row.Err != nil:
			outcome.Status = statusFailed
			outcome.Reason = row.Err.Error()
			failed++
		case row.Provisioned():
			outcome.Status = statusSkipped
			outcome.DEC = row.DEC
			skipped++
		default:
			outcome.Status = statusValid
			requests = append(requests, batch.RoomRequest{LocationID: row.LocationID, Name: row.Name})
			submitRows = append(submitRows, i)
		}
		outcomes[i] = outcome
	}

	if config.Room.DryRun {
		return reportDryRun(file, outcomes, skipped, failed)
	}

	logging.Info("Submitting %d rooms at %d requests/second (retries: %d)",
		len(requests), config.Room.Rate, config.Room.Retries)

	apiClient := client.CreateAPIClient()
	submitter := batch.NewSubmitter(func(req batch.RoomRequest) (string, error) {
		return apiClient.CreateRoom(req.LocationID, req.Name)
	}, batch.Config{
		RequestsPerSecond: config.Room.Rate,
		MaxAttempts:       config.Room.Retries,
	}, batch.RealClock())

	start := time.Now()
	submitter.OnProgress(func(done, total int, result batch.RoomResult) {
		i := submitRows[done-1]
		outcome := display.ImportRowOutcome{
			RowNumber: i + 1,
			Name:      result.Request.Name,
			Status:    statusCreated,
			DEC:       result.Code,
		}
		if !result.Succeeded() {
			outcome.Status = statusFailed
			outcome.Reason = result.Reason
		}
		display.DisplayImportProgress(done, total, outcome, time.Since(start))
	})

	results := submitter.Run(requests)

	created := 0
	for k, result := range results {
		i := submitRows[k]
		if result.Succeeded() {
			file.SetDEC(i, result.Code)
			outcomes[i].Status = statusCreated
			outcomes[i].DEC = result.Code
			created++
		} else {
			outcomes[i].Status = statusFailed
			outcomes[i].Reason = result.Reason
			failed++
		}
	}

	if created > 0 {
		if err := file.Write(); err != nil {
			logging.Error("Import finished but the CSV could not be rewritten: %v", err)
			return err
		}
		logging.Info("Wrote enrollment codes back to %s", file.Path)
	}

	display.DisplayImportReport(display.ImportReport{
		Total:   len(file.Rows),
		Created: created,
		Skipped: skipped,
		Failed:  failed,
		Elapsed: time.Since(start),
		Rows:    outcomes,
	})

	if failed > 0 {
		return fmt.Errorf("%d of %d rows failed", failed, len(file.Rows))
	}
	logging.Success("Created %d rooms (%d skipped) in %s",
		created, skipped, utils.FormatDuration(time.Since(start)))
	return nil
}

// reportDryRun prints the validation outcome of a CSV file without calling
// the API. Rows that would be submitted are reported as valid.
func reportDryRun(file *csvfile.File, outcomes []display.ImportRowOutcome, skipped, failed int) error {
	valid := len(file.Rows) - skipped - failed

	display.DisplayImportReport(display.ImportReport{
		Total:   len(file.Rows),
		Created: 0,
		Skipped: skipped,
		Failed:  failed,
		Rows:    outcomes,
	})

	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d rows", failed, len(file.Rows))
	}
	logging.Success("Dry run: %d rows valid, %d already provisioned", valid, skipped)
	return nil
}
