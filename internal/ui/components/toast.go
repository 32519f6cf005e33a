// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
//
// This file implements non-blocking toast notifications. Toasts appear in
// the bottom-right corner and auto-dismiss, so the user keeps working
// while the outcome of a save or delete is displayed.
package components

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the severity of a toast notification.
type ToastKind int

const (
	// ToastKindInfo is an informational toast (blue color). The zero
	// value, so a toast with no severity set reads as info.
	ToastKindInfo ToastKind = iota
	// ToastKindSuccess is a success toast (emerald color)
	ToastKindSuccess
	// ToastKindWarning is a warning toast (amber color)
	ToastKindWarning
	// ToastKindError is an error toast (rose color)
	ToastKindError
)

// ToastDuration is the auto-dismiss duration for every toast.
const ToastDuration = 4 * time.Second

// Toast represents one non-blocking notification.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the toast should be dismissed.
func (t *Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager manages the stack of visible toasts. Newest first; IDs are
// monotonically increasing so a dismiss always targets the right toast.
// The stack is unbounded; expiry is the only thing that removes a toast
// the user did not dismiss.
type ToastManager struct {
	toasts []Toast
	nextID int
	mutex  sync.Mutex
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{nextID: 1}
}

// Notify adds a toast with the given severity and returns its ID.
func (m *ToastManager) Notify(message string, kind ToastKind) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	toast := Toast{
		ID:        m.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  ToastDuration,
	}
	m.nextID++

	m.toasts = append([]Toast{toast}, m.toasts...)
	return toast.ID
}

// Dismiss removes a toast by ID. Unknown IDs are ignored; the toast may
// have already expired.
func (m *ToastManager) Dismiss(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, toast := range m.toasts {
		if toast.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Tick removes expired toasts and returns the remaining ones.
func (m *ToastManager) Tick() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	active := m.toasts[:0]
	for _, toast := range m.toasts {
		if !toast.IsExpired() {
			active = append(active, toast)
		}
	}
	m.toasts = active

	result := make([]Toast, len(m.toasts))
	copy(result, m.toasts)
	return result
}

// Toasts returns a copy of the current toasts, newest first.
func (m *ToastManager) Toasts() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]Toast, len(m.toasts))
	copy(result, m.toasts)
	return result
}

// HasToasts returns true if there are any active toasts.
func (m *ToastManager) HasToasts() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.toasts) > 0
}

// Clear removes all toasts.
func (m *ToastManager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.toasts = nil
}

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// ToastTickMsg is sent periodically to expire toasts.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd returns a command that ticks toasts every 250ms.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

// RenderToast renders a single toast notification.
func RenderToast(theme *styles.Theme, toast Toast, width int) string {
	maxWidth := 50
	if width > 0 && width-6 < maxWidth {
		maxWidth = width - 6
	}
	if maxWidth < 24 {
		maxWidth = 24
	}

	var box lipgloss.Style
	var icon string
	switch toast.Kind {
	case ToastKindError:
		box = theme.ToastError
		icon = styles.StatusIndicators.Error
	case ToastKindWarning:
		box = theme.ToastWarning
		icon = styles.StatusIndicators.Warning
	case ToastKindSuccess:
		box = theme.ToastSuccess
		icon = styles.StatusIndicators.Success
	default:
		box = theme.ToastInfo
		icon = styles.StatusIndicators.Info
	}

	return box.MaxWidth(maxWidth).Render(icon + " " + toast.Message)
}

// RenderToastStack renders the visible toasts stacked in the bottom-right
// corner, newest at the top of the stack.
func RenderToastStack(theme *styles.Theme, toasts []Toast, width, height int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		rendered = append(rendered, RenderToast(theme, toast, width))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, stack)
	}
	return stack
}

// OverlayToasts draws the toast stack over the bottom-right corner of a
// rendered view without disturbing the rest of the frame.
func OverlayToasts(theme *styles.Theme, view string, toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	stack := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		stack = append(stack, strings.Split(RenderToast(theme, toast, width), "\n")...)
	}

	// Replace the bottom-most lines, right-aligned.
	start := len(lines) - len(stack) - 1
	if start < 0 {
		start = 0
	}
	for i, toastLine := range stack {
		if start+i >= len(lines) {
			break
		}
		lines[start+i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, toastLine)
	}
	return strings.Join(lines, "\n")
}
