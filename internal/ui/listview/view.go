// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
package listview

import (
	"strings"

	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// View renders the list view, or the active modal when one is open.
func (m Model[T]) View() string {
	switch m.mode {
	case modeForm:
		if m.form != nil {
			return components.RenderModal(m.theme, m.form.Title, m.form.View(), m.width, m.height)
		}
	case modeConfirm:
		if m.confirming != nil {
			question := "Delete this record?"
			if m.desc.DeletePrompt != nil {
				question = m.desc.DeletePrompt(*m.confirming)
			}
			return components.RenderConfirm(m.theme, "Delete "+m.desc.Singular, question, m.confirmYes, m.width, m.height)
		}
	}

	var sb strings.Builder

	// Search row with the active status filter.
	searchBox := m.theme.SearchBox
	if m.mode == modeSearch {
		searchBox = m.theme.SearchBoxFocus
	}
	sb.WriteString(searchBox.Render(m.search.View()))

	if len(m.desc.StatusFilters) > 0 {
		filter := "All"
		if v := m.statusValue(); v != "" {
			filter = v
		}
		sb.WriteString("  ")
		sb.WriteString(m.theme.FilterLabel.Render("status: "))
		sb.WriteString(m.theme.FilterValue.Render(filter))
	}
	sb.WriteString("\n\n")

	if m.loading {
		sb.WriteString(m.spinner.View("Loading " + strings.ToLower(m.desc.Title) + "…"))
		return sb.String()
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n\n")
	sb.WriteString(components.RenderPageInfo(m.theme, m.page, m.total, m.limit))

	return sb.String()
}

// Shortcuts returns the status bar hints for the current mode.
func (m Model[T]) Shortcuts() []components.Shortcut {
	switch m.mode {
	case modeForm:
		return []components.Shortcut{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case modeConfirm:
		return []components.Shortcut{
			{Key: "y", Desc: "delete"},
			{Key: "esc", Desc: "cancel"},
		}
	case modeSearch:
		return []components.Shortcut{
			{Key: "enter", Desc: "search"},
			{Key: "esc", Desc: "back"},
		}
	}

	shortcuts := []components.Shortcut{
		{Key: "/", Desc: "search"},
		{Key: "n", Desc: "new"},
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "delete"},
	}
	if len(m.desc.StatusFilters) > 0 {
		shortcuts = append(shortcuts, components.Shortcut{Key: "f", Desc: "filter"})
	}
	for _, action := range m.desc.Actions {
		shortcuts = append(shortcuts, components.Shortcut{Key: action.Key, Desc: strings.ToLower(action.Label)})
	}
	return shortcuts
}
