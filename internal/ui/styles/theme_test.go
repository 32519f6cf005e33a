// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the clinic TUI.
package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() should not return nil")
	}
}

func TestLayoutModes(t *testing.T) {
	theme := NewTheme()

	cases := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	for _, c := range cases {
		theme.SetSize(c.width, 40)
		if got := theme.GetLayoutMode(); got != c.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", c.width, got, c.want)
		}
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize(120, 40) = %dx%d", theme.Width, theme.Height)
	}
}

func TestStatusBadgeContainsStatus(t *testing.T) {
	theme := NewTheme()
	for _, status := range []string{"scheduled", "paid", "overdue", "in_progress"} {
		if badge := theme.StatusBadge(status); !strings.Contains(badge, status) {
			t.Errorf("StatusBadge(%q) = %q, should contain the status text", status, badge)
		}
	}
}
