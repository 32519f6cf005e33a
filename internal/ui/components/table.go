// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"strings"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
	"github.com/jeranaias/clinic-tui/internal/util"
)

// =============================================================================
// TABLE RENDERING
// =============================================================================

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Table renders a fixed-layout table with a highlighted selection row.
// Cell text wider than its column is truncated with an ellipsis; widths
// are measured in display cells so Hebrew and other wide text line up.
type Table struct {
	Columns  []Column
	Rows     [][]string
	Selected int
	Empty    string // message shown when Rows is empty
	theme    *styles.Theme
}

// NewTable creates a table with the given columns.
func NewTable(theme *styles.Theme, columns []Column) *Table {
	return &Table{
		Columns: columns,
		Empty:   "No records found",
		theme:   theme,
	}
}

// SetRows replaces the table contents and clamps the selection.
func (t *Table) SetRows(rows [][]string) {
	t.Rows = rows
	if t.Selected >= len(rows) {
		t.Selected = len(rows) - 1
	}
	if t.Selected < 0 {
		t.Selected = 0
	}
}

// MoveSelection moves the highlight by delta, clamped to the row range.
func (t *Table) MoveSelection(delta int) {
	t.Selected += delta
	if t.Selected < 0 {
		t.Selected = 0
	}
	if t.Selected >= len(t.Rows) {
		t.Selected = len(t.Rows) - 1
	}
	if t.Selected < 0 {
		t.Selected = 0
	}
}

// SelectedRow returns the highlighted row, or nil when the table is empty.
func (t *Table) SelectedRow() []string {
	if t.Selected < 0 || t.Selected >= len(t.Rows) {
		return nil
	}
	return t.Rows[t.Selected]
}

// View renders the table.
func (t *Table) View() string {
	var sb strings.Builder

	sb.WriteString(t.theme.TableHeader.Render(t.renderCells(t.headerCells())))
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(t.theme.TableEmpty.Render(t.Empty))
		return sb.String()
	}

	for i, row := range t.Rows {
		line := t.renderCells(row)
		if i == t.Selected {
			sb.WriteString(t.theme.TableRowSelected.Render(line))
		} else {
			sb.WriteString(t.theme.TableRow.Render(line))
		}
		if i < len(t.Rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Table) headerCells() []string {
	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = col.Title
	}
	return cells
}

// renderCells lays out one row, truncating and padding each cell to its
// column width.
func (t *Table) renderCells(cells []string) string {
	parts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		parts[i] = util.PadWidth(util.TruncateWidth(text, col.Width), col.Width)
	}
	return strings.Join(parts, "  ")
}
