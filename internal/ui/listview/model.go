// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
package listview

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// LIST STATE
// =============================================================================

// mode is the interaction mode of the list view.
type mode int

const (
	modeBrowse  mode = iota // navigating the table
	modeSearch              // typing in the search box
	modeForm                // create/edit modal open
	modeConfirm             // delete confirmation open
)

// DefaultLimit is the page size used until the server reports its own.
const DefaultLimit = 10

// =============================================================================
// LIST MODEL
// =============================================================================

// Model is the Bubble Tea model for one resource collection.
type Model[T any] struct {
	desc   Descriptor[T]
	client *api.Client
	theme  *styles.Theme

	width  int
	height int

	// Data
	items []T
	total int
	page  int
	limit int
	refs  Refs

	// Browse state
	mode      mode
	search    textinput.Model
	statusIdx int
	table     *components.Table
	loading   bool
	spinner   *components.Spinner

	// Modal state
	form       *Form
	editingID  string
	confirming *T
	confirmYes bool
}

// New creates a list view for the described resource.
func New[T any](theme *styles.Theme, client *api.Client, desc Descriptor[T]) Model[T] {
	search := textinput.New()
	search.Placeholder = "Search…"
	search.CharLimit = 80

	return Model[T]{
		desc:    desc,
		client:  client,
		theme:   theme,
		page:    1,
		limit:   DefaultLimit,
		search:  search,
		table:   components.NewTable(theme, desc.Columns),
		spinner: components.NewSpinner(theme),
	}
}

// Init starts the first page load.
func (m Model[T]) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), m.spinner.Tick())
}

// SetSize updates the layout dimensions.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Title returns the collection title for the frame around this view.
func (m Model[T]) Title() string {
	return m.desc.Title
}

// Capturing reports whether the view is consuming raw text input. The
// root model keeps its global shortcuts out of the way while a search
// box or modal is open.
func (m Model[T]) Capturing() bool {
	return m.mode != modeBrowse
}

// Refs exposes the bundled reference collections from the last load.
func (m Model[T]) Refs() Refs {
	return m.refs
}

// Items exposes the currently loaded page.
func (m Model[T]) Items() []T {
	return m.items
}

// Page returns the current page number.
func (m Model[T]) Page() int {
	return m.page
}

// startLoad flags the view as loading and returns the fetch command.
func (m *Model[T]) startLoad() tea.Cmd {
	m.loading = true
	return m.fetchCmd()
}

// statusValue returns the active status filter, empty for "All".
func (m Model[T]) statusValue() string {
	if m.statusIdx == 0 || m.statusIdx > len(m.desc.StatusFilters) {
		return ""
	}
	return m.desc.StatusFilters[m.statusIdx-1]
}

// selected returns a pointer to the highlighted record, nil when the page
// is empty.
func (m Model[T]) selected() *T {
	if len(m.items) == 0 || m.table.Selected >= len(m.items) {
		return nil
	}
	return &m.items[m.table.Selected]
}

// rebuildRows refreshes the table from the loaded items.
func (m *Model[T]) rebuildRows() {
	rows := make([][]string, 0, len(m.items))
	for _, item := range m.items {
		rows = append(rows, m.desc.Row(item))
	}
	m.table.SetRows(rows)
}
