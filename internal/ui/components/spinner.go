// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// LOADING SPINNER
// =============================================================================

// Spinner is a small frame-cycling loading indicator.
type Spinner struct {
	config styles.SpinnerConfig
	frame  int
	theme  *styles.Theme
}

// SpinnerTickMsg advances the spinner by one frame.
type SpinnerTickMsg struct {
	Time time.Time
}

// NewSpinner creates a spinner using the line animation.
func NewSpinner(theme *styles.Theme) *Spinner {
	return &Spinner{
		config: styles.LineSpinner,
		theme:  theme,
	}
}

// Tick returns the command scheduling the next frame.
func (s *Spinner) Tick() tea.Cmd {
	return tea.Tick(s.config.Duration(), func(t time.Time) tea.Msg {
		return SpinnerTickMsg{Time: t}
	})
}

// Advance moves to the next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(s.config.Frames)
}

// View renders the current frame with an optional label.
func (s *Spinner) View(label string) string {
	frame := s.theme.Spinner.Render(s.config.Frames[s.frame])
	if label == "" {
		return frame
	}
	return frame + " " + s.theme.LoadingText.Render(label)
}
