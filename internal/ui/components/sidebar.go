// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"strings"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// NAVIGATION SIDEBAR
// =============================================================================

// NavItem is one entry in the sidebar.
type NavItem struct {
	Label      string
	Key        string // shortcut shown next to the label
	DoctorOnly bool
}

// Sidebar renders the navigation column. Items gated to doctors are hidden
// entirely for other roles rather than shown disabled; a secretary should
// not see surfaces they can never open.
type Sidebar struct {
	Items    []NavItem
	Active   int
	IsDoctor bool
	Height   int
	theme    *styles.Theme
}

// NewSidebar creates a sidebar with the given items.
func NewSidebar(theme *styles.Theme, items []NavItem) *Sidebar {
	return &Sidebar{
		Items:  items,
		Height: 24,
		theme:  theme,
	}
}

// VisibleItems returns the items the current role may open, in order.
func (s *Sidebar) VisibleItems() []NavItem {
	visible := make([]NavItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.DoctorOnly && !s.IsDoctor {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// View renders the sidebar column.
func (s *Sidebar) View() string {
	visible := s.VisibleItems()

	lines := make([]string, 0, len(visible))
	for i, item := range visible {
		label := item.Key + " " + item.Label
		if i == s.Active {
			lines = append(lines, s.theme.NavItemActive.Render(label))
		} else {
			lines = append(lines, s.theme.NavItem.Render(label))
		}
	}

	column := strings.Join(lines, "\n")
	height := s.Height
	if height < len(visible)+2 {
		height = len(visible) + 2
	}
	return s.theme.Sidebar.Height(height).Render(column)
}
