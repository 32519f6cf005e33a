// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

func patientColumns() []Column {
	return []Column{
		{Title: "Name", Width: 20},
		{Title: "Phone", Width: 14},
	}
}

func TestTableSelectionClamped(t *testing.T) {
	table := NewTable(styles.NewTheme(), patientColumns())
	table.SetRows([][]string{
		{"Ruth Levi", "050-1234567"},
		{"Dana Mizrahi", "052-7654321"},
	})

	table.MoveSelection(-5)
	if table.Selected != 0 {
		t.Errorf("selection should clamp at 0, got %d", table.Selected)
	}

	table.MoveSelection(10)
	if table.Selected != 1 {
		t.Errorf("selection should clamp at last row, got %d", table.Selected)
	}
}

func TestTableSelectionFollowsShrinkingRows(t *testing.T) {
	table := NewTable(styles.NewTheme(), patientColumns())
	table.SetRows([][]string{
		{"Ruth Levi", "050-1234567"},
		{"Dana Mizrahi", "052-7654321"},
		{"Yael Peretz", "054-1112222"},
	})
	table.Selected = 2

	// A new page with fewer rows pulls the selection back in range.
	table.SetRows([][]string{{"Ruth Levi", "050-1234567"}})
	if table.Selected != 0 {
		t.Errorf("selection should clamp after rows shrink, got %d", table.Selected)
	}
}

func TestSelectedRow(t *testing.T) {
	table := NewTable(styles.NewTheme(), patientColumns())
	if table.SelectedRow() != nil {
		t.Error("empty table should have no selected row")
	}

	table.SetRows([][]string{{"Ruth Levi", "050-1234567"}})
	row := table.SelectedRow()
	if row == nil || row[0] != "Ruth Levi" {
		t.Errorf("SelectedRow() = %v", row)
	}
}

func TestTableViewTruncatesLongCells(t *testing.T) {
	table := NewTable(styles.NewTheme(), []Column{{Title: "Name", Width: 8}})
	table.SetRows([][]string{{"A very long patient name"}})

	view := table.View()
	if strings.Contains(view, "A very long patient name") {
		t.Error("cell text wider than the column should be truncated")
	}
	if !strings.Contains(view, "…") {
		t.Error("truncated cell should end with an ellipsis")
	}
}

func TestTableViewEmptyMessage(t *testing.T) {
	table := NewTable(styles.NewTheme(), patientColumns())
	view := table.View()
	if !strings.Contains(view, "No records found") {
		t.Errorf("empty table should show the empty message, got %q", view)
	}
}
