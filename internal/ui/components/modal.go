// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// MODAL FRAME
// =============================================================================

// RenderModal centers a titled modal box over the full view area. The view
// behind it is replaced rather than dimmed; closing the modal re-renders
// the underlying list.
func RenderModal(theme *styles.Theme, title, body string, width, height int) string {
	content := theme.ModalTitle.Render(title) + "\n\n" + body
	box := theme.ModalBox.Render(content)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// RenderConfirm renders a yes/no confirmation modal. The destructive
// choice is never the highlighted default.
func RenderConfirm(theme *styles.Theme, title, question string, confirmSelected bool, width, height int) string {
	confirm := theme.Button.Render("Delete")
	cancel := theme.ButtonActive.Render("Cancel")
	if confirmSelected {
		confirm = theme.ButtonDanger.Render("Delete")
		cancel = theme.Button.Render("Cancel")
	}

	body := question + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cancel, confirm)
	return RenderModal(theme, title, body, width, height)
}
