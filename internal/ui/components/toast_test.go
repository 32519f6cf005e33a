// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

func TestToastIDsMonotonic(t *testing.T) {
	m := NewToastManager()

	first := m.Notify("Patient saved", ToastKindSuccess)
	second := m.Notify("Request failed, please try again", ToastKindError)
	third := m.Notify("Invoice marked paid", ToastKindSuccess)

	if !(first < second && second < third) {
		t.Errorf("toast IDs should be monotonically increasing: %d, %d, %d", first, second, third)
	}
}

func TestToastStackNewestFirst(t *testing.T) {
	m := NewToastManager()
	m.Notify("first", ToastKindSuccess)
	m.Notify("second", ToastKindSuccess)

	toasts := m.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].Message != "second" {
		t.Errorf("newest toast should be first, got %q", toasts[0].Message)
	}
}

func TestAllToastsInWindowStayVisible(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < 10; i++ {
		m.Notify(fmt.Sprintf("saved %d", i), ToastKindSuccess)
	}

	if got := len(m.Tick()); got != 10 {
		t.Errorf("all 10 unexpired toasts should be visible, got %d", got)
	}
}

func TestDefaultKindIsInfo(t *testing.T) {
	m := NewToastManager()
	m.Notify("backup finished", ShowToastMsg{}.Kind)

	toasts := m.Toasts()
	if len(toasts) != 1 || toasts[0].Kind != ToastKindInfo {
		t.Errorf("a toast with no severity set should be info, got %v", toasts)
	}
}

func TestTickExpiresOldToasts(t *testing.T) {
	m := NewToastManager()
	m.Notify("stale", ToastKindSuccess)

	// Age the toast past its window.
	m.toasts[0].CreatedAt = time.Now().Add(-ToastDuration - time.Second)

	remaining := m.Tick()
	if len(remaining) != 0 {
		t.Errorf("expired toast should be removed, %d remaining", len(remaining))
	}
	if m.HasToasts() {
		t.Error("HasToasts() should be false after expiry")
	}
}

func TestTickKeepsFreshToasts(t *testing.T) {
	m := NewToastManager()
	m.Notify("fresh", ToastKindSuccess)

	remaining := m.Tick()
	if len(remaining) != 1 {
		t.Errorf("fresh toast should survive a tick, %d remaining", len(remaining))
	}
}

func TestDismissByID(t *testing.T) {
	m := NewToastManager()
	id := m.Notify("oops", ToastKindError)
	m.Notify("kept", ToastKindSuccess)

	m.Dismiss(id)

	toasts := m.Toasts()
	if len(toasts) != 1 || toasts[0].Message != "kept" {
		t.Errorf("Dismiss(%d) should remove only the error toast, got %v", id, toasts)
	}
}

func TestDismissUnknownIDIsNoop(t *testing.T) {
	m := NewToastManager()
	m.Notify("kept", ToastKindSuccess)
	m.Dismiss(999)

	if len(m.Toasts()) != 1 {
		t.Error("dismissing an unknown ID should not remove anything")
	}
}

func TestClear(t *testing.T) {
	m := NewToastManager()
	m.Notify("one", ToastKindSuccess)
	m.Notify("two", ToastKindError)
	m.Clear()

	if m.HasToasts() {
		t.Error("Clear() should remove all toasts")
	}
}

func TestRenderToastIndicatorPerKind(t *testing.T) {
	theme := styles.NewTheme()
	cases := []struct {
		kind      ToastKind
		indicator string
	}{
		{ToastKindSuccess, styles.StatusIndicators.Success},
		{ToastKindError, styles.StatusIndicators.Error},
		{ToastKindWarning, styles.StatusIndicators.Warning},
		{ToastKindInfo, styles.StatusIndicators.Info},
	}

	for _, c := range cases {
		toast := Toast{ID: 1, Message: "note", Kind: c.kind}
		rendered := RenderToast(theme, toast, 80)
		if !strings.Contains(rendered, c.indicator) {
			t.Errorf("toast kind %d should render indicator %q, got %q", c.kind, c.indicator, rendered)
		}
	}
}
