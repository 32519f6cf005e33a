// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"strings"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR - Shortcut hints for the active view
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom shortcut line.
type StatusBar struct {
	Shortcuts []Shortcut
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the bar width.
func (b *StatusBar) SetWidth(width int) {
	b.Width = width
}

// SetShortcuts replaces the displayed hints.
func (b *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	b.Shortcuts = shortcuts
}

// View renders the status bar as one full-width line.
func (b *StatusBar) View() string {
	parts := make([]string, 0, len(b.Shortcuts))
	for _, s := range b.Shortcuts {
		parts = append(parts,
			b.theme.ShortcutKey.Render(s.Key)+" "+b.theme.ShortcutDesc.Render(s.Desc))
	}
	line := strings.Join(parts, "  ")
	return b.theme.StatusBar.Width(b.Width).Render(line)
}
