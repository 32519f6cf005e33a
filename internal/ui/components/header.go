// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with signed-in user
// =============================================================================

// Header is the title bar shown above every authenticated view.
type Header struct {
	Title string
	User  *model.User
	Width int
	theme *styles.Theme
}

// NewHeader creates a new Header component.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "clinic",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetUser updates the signed-in user shown on the right.
func (h *Header) SetUser(user *model.User) {
	h.User = user
}

// View renders the header as a single full-width line.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	brand := h.theme.HeaderTitle.Render(h.Title)

	right := ""
	if h.User != nil {
		role := h.roleBadge(h.User.Role)
		right = h.theme.HeaderUser.Render(h.User.FullName) + " " + role
	}

	gap := width - lipgloss.Width(brand) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	line := brand + strings.Repeat(" ", gap) + right
	return h.theme.Header.Width(width).Render(line)
}

// roleBadge renders the role indicator next to the user name.
func (h *Header) roleBadge(role model.Role) string {
	color := styles.TextMuted
	if role == model.RoleDoctor {
		color = styles.Violet
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render("[" + string(role) + "]")
}
