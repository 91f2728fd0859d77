// Package utils provides watch mode functionality for continuous CLI monitoring.
//
// This file implements real-time display capabilities for the pulsectl CLI,
// letting operators watch region and location listings refresh live while a
// bulk import runs elsewhere, without manual command repetition.
//
// The watch loop combines a timer-based refresh with signal handling:
//
//   - Periodic Updates: 2-second refresh intervals for live data display
//   - Signal Handling: Clean shutdown on SIGINT/SIGTERM for user interruption
//   - Terminal Management: Screen clearing and cursor positioning for smooth updates
package utils

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulse-tools/pulsectl/internal/logging"
)

// RunWithWatch executes a function either once or repeatedly in watch mode with
// terminal management and graceful shutdown handling. Refreshes every 2 seconds
// until the user interrupts with SIGINT or SIGTERM.
//
// Display errors during refresh are logged and skipped so transient API
// connectivity problems do not end the watch session.
func RunWithWatch(fn func() error, enableWatch bool) error {
	if !enableWatch {
		return fn()
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Create a ticker for periodic updates
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	// Clear screen and show initial data
	fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
	if err := fn(); err != nil {
		return err
	}

	for {
		select {
		case <-ticker.C:
			fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
			if err := fn(); err != nil {
				logging.Error("Error updating display: %v", err)
				continue
			}
		case <-sigChan:
			fmt.Println("\nWatch mode interrupted")
			return nil
		}
	}
}
