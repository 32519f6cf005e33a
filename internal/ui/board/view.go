// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package board provides the task board view.
package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/util"
)

// View renders the board, or the active modal when one is open.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		if m.form != nil {
			return components.RenderModal(m.theme, m.form.Title, m.form.View(), m.width, m.height)
		}
	case modeConfirm:
		if m.confirming != nil {
			question := "Delete task \"" + m.confirming.Title + "\"?"
			return components.RenderConfirm(m.theme, "Delete Task", question, m.confirmYes, m.width, m.height)
		}
	}

	if m.loading {
		return m.spinner.View("Loading board…")
	}

	colWidth := m.columnWidth()
	columns := make([]string, 0, len(model.TaskStatuses))
	for i, status := range model.TaskStatuses {
		columns = append(columns, m.renderColumn(i, status, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// columnWidth splits the available width evenly across the three columns.
func (m Model) columnWidth() int {
	width := m.width
	if width <= 0 {
		width = 90
	}
	col := width/len(model.TaskStatuses) - 4
	if col < 20 {
		col = 20
	}
	return col
}

// renderColumn renders one status column with its cards.
func (m Model) renderColumn(index int, status string, width int) string {
	var sb strings.Builder

	label := columnLabels[status]
	sb.WriteString(m.theme.BoardColumnTitle.Width(width).Render(label))
	sb.WriteString("\n")

	tasks := m.columnTasks(status)
	if len(tasks) == 0 {
		sb.WriteString(m.theme.BoardCardMeta.Render("  no tasks"))
	}
	for i, task := range tasks {
		sb.WriteString(m.renderCard(task, width, index == m.focusCol && i == m.selected[index]))
		if i < len(tasks)-1 {
			sb.WriteString("\n")
		}
	}

	column := m.theme.BoardColumn
	if index == m.focusCol {
		column = m.theme.BoardColumnFocus
	}
	return column.Width(width + 2).Render(sb.String())
}

// renderCard renders one task card: title line plus priority/assignee
// meta line.
func (m Model) renderCard(task model.Task, width int, selected bool) string {
	title := util.TruncateWidth(task.Title, width-2)

	meta := task.Priority
	if task.AssignedTo != "" {
		if name := m.assigneeName(task.AssignedTo); name != "" {
			meta += " · " + name
		}
	}
	meta = util.TruncateWidth(meta, width-2)

	card := title + "\n" + m.theme.BoardCardMeta.Render(meta)
	if selected {
		return m.theme.BoardCardSelected.Width(width).Render(card)
	}
	return m.theme.BoardCard.Width(width).Render(card)
}

// assigneeName resolves a user ID through the bundled assignable users.
func (m Model) assigneeName(id string) string {
	for _, u := range m.users {
		if u.ID == id {
			return u.FullName
		}
	}
	return ""
}

// Shortcuts returns the status bar hints for the current mode.
func (m Model) Shortcuts() []components.Shortcut {
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
	}
	return []components.Shortcut{
		{Key: "←/→", Desc: "column"},
		{Key: "[/]", Desc: "move task"},
		{Key: "n", Desc: "new"},
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "delete"},
	}
}
