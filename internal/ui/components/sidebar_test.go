// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

func clinicNav() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Key: "1"},
		{Label: "Patients", Key: "2"},
		{Label: "Assistant", Key: "7", DoctorOnly: true},
	}
}

func TestSidebarHidesDoctorItemsForSecretary(t *testing.T) {
	sidebar := NewSidebar(styles.NewTheme(), clinicNav())
	sidebar.IsDoctor = false

	visible := sidebar.VisibleItems()
	if len(visible) != 2 {
		t.Fatalf("secretary should see 2 items, got %d", len(visible))
	}
	for _, item := range visible {
		if item.DoctorOnly {
			t.Errorf("doctor-only item %q should be hidden", item.Label)
		}
	}

	if strings.Contains(sidebar.View(), "Assistant") {
		t.Error("rendered sidebar should not mention hidden items")
	}
}

func TestSidebarShowsAllItemsForDoctor(t *testing.T) {
	sidebar := NewSidebar(styles.NewTheme(), clinicNav())
	sidebar.IsDoctor = true

	if len(sidebar.VisibleItems()) != 3 {
		t.Errorf("doctor should see all 3 items")
	}
	if !strings.Contains(sidebar.View(), "Assistant") {
		t.Error("doctor sidebar should include the assistant")
	}
}
