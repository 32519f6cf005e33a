// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the clinic TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER AND NAVIGATION STYLES
	// ==========================================================================

	Header        lipgloss.Style
	HeaderTitle   lipgloss.Style
	HeaderUser    lipgloss.Style
	Sidebar       lipgloss.Style
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style
	NavItemLocked lipgloss.Style

	// ==========================================================================
	// TABLE STYLES
	// ==========================================================================

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	TableEmpty       lipgloss.Style

	// ==========================================================================
	// SEARCH AND PAGINATION STYLES
	// ==========================================================================

	SearchBox      lipgloss.Style
	SearchBoxFocus lipgloss.Style
	PageInfo       lipgloss.Style
	FilterLabel    lipgloss.Style
	FilterValue    lipgloss.Style

	// ==========================================================================
	// FORM AND MODAL STYLES
	// ==========================================================================

	ModalBox        lipgloss.Style
	ModalTitle      lipgloss.Style
	FieldLabel      lipgloss.Style
	FieldLabelFocus lipgloss.Style
	FieldError      lipgloss.Style
	Button          lipgloss.Style
	ButtonActive    lipgloss.Style
	ButtonDanger    lipgloss.Style

	// ==========================================================================
	// TOAST STYLES
	// ==========================================================================

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style

	// ==========================================================================
	// TASK BOARD STYLES
	// ==========================================================================

	BoardColumn       lipgloss.Style
	BoardColumnFocus  lipgloss.Style
	BoardColumnTitle  lipgloss.Style
	BoardCard         lipgloss.Style
	BoardCardSelected lipgloss.Style
	BoardCardMeta     lipgloss.Style

	// ==========================================================================
	// CHAT STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SQLBlock        lipgloss.Style
	ChatInput       lipgloss.Style
	ChatWaiting     lipgloss.Style

	// ==========================================================================
	// DASHBOARD STYLES
	// ==========================================================================

	KPICard      lipgloss.Style
	KPIValue     lipgloss.Style
	KPILabel     lipgloss.Style
	ChurnBox     lipgloss.Style
	ChurnTitle   lipgloss.Style
	ChurnPatient lipgloss.Style

	// ==========================================================================
	// LOGIN STYLES
	// ==========================================================================

	LoginBox    lipgloss.Style
	LoginTitle  lipgloss.Style
	LoginError  lipgloss.Style
	LoginHint   lipgloss.Style
	Spinner     lipgloss.Style
	LoadingText lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header and navigation
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.HeaderUser = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Sidebar = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		Padding(1, 1)

	t.NavItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.NavItemActive = lipgloss.NewStyle().
		Background(Teal).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.NavItemLocked = lipgloss.NewStyle().
		Foreground(TextMuted).
		Faint(true).
		Padding(0, 1)

	// Tables
	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Foreground(TextPrimary).
		Bold(true)

	t.TableEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	// Search and pagination
	t.SearchBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SearchBoxFocus = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.PageInfo = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FilterLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FilterValue = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	// Forms and modals
	t.ModalBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(1, 2)

	t.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FieldLabelFocus = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.FieldError = lipgloss.NewStyle().
		Foreground(Rose)

	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(1)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Teal).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	t.ButtonDanger = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Rose).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	// Toasts
	t.ToastSuccess = lipgloss.NewStyle().
		Foreground(Emerald).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Padding(0, 1)

	t.ToastError = lipgloss.NewStyle().
		Foreground(Rose).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(0, 1)

	t.ToastWarning = lipgloss.NewStyle().
		Foreground(Amber).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(0, 1)

	t.ToastInfo = lipgloss.NewStyle().
		Foreground(Blue).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 1)

	// Task board
	t.BoardColumn = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.BoardColumnFocus = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.BoardColumnTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		Align(lipgloss.Center)

	t.BoardCard = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(OverlayDim).
		PaddingLeft(1)

	t.BoardCardSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(FocusRing).
		PaddingLeft(1)

	t.BoardCardMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Chat
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SQLBlock = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Violet).
		PaddingLeft(2)

	t.ChatInput = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChatWaiting = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Dashboard
	t.KPICard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.KPIValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.KPILabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ChurnBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(0, 2)

	t.ChurnTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.ChurnPatient = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Login
	t.LoginBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Teal).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.LoginTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.LoginError = lipgloss.NewStyle().
		Foreground(Rose)

	t.LoginHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.LoadingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// StatusBadge renders a record status with its shared palette color.
func (t *Theme) StatusBadge(status string) string {
	return lipgloss.NewStyle().
		Foreground(StatusColor(status)).
		Bold(true).
		Render(status)
}
