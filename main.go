// clinic-tui - A terminal front end for the clinic administration API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/config"
	"github.com/jeranaias/clinic-tui/internal/session"
	"github.com/jeranaias/clinic-tui/internal/ui/app"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	apiURL := flag.String("api", "", "clinic API base URL (overrides config)")
	stateDir := flag.String("state-dir", "", "directory for session and logs (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("clinic-tui %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "clinic-tui requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *stateDir != "" {
		cfg.StateDir = *stateDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir, err := cfg.ResolveStateDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Stdout belongs to the TUI; logs go to a file in the state dir.
	logFile, err := os.OpenFile(filepath.Join(dir, "clinic-tui.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Printf("clinic-tui %s starting, api=%s", Version, cfg.APIURL)

	api.Version = Version

	store := session.NewStore(dir)
	if err := store.Restore(); err != nil {
		log.Printf("session restore: %v", err)
	}

	client := api.NewClient(cfg.APIURL, store).WithTimeout(cfg.RequestTimeout())

	// Lock in the color profile before Bubble Tea takes the terminal over.
	profile := termenv.ColorProfile()
	termenv.SetDefaultOutput(termenv.NewOutput(os.Stdout, termenv.WithProfile(profile)))

	theme := styles.NewTheme()
	m := app.New(theme, client, store)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running clinic-tui: %v\n", err)
		os.Exit(1)
	}
	log.Printf("clinic-tui exiting")
}
