// cmd/billdesk/main.go
//
// Entry point for the billdesk terminal client.
//
// Flow:
// 1. Load .env (optional) so BILLDESK_API_URL can point at the backend
// 2. Initialize the .billdesk folder (config file, logs)
// 3. Launch the TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"billdesk/internal/config"
	"billdesk/internal/tui"
)

func main() {
	// A missing .env is fine; the config file and defaults cover it.
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitBilldeskDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .billdesk directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting billdesk: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits.
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
