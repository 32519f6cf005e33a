// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational query view. Doctors ask
// free-text questions about clinic data; the server answers with text
// and, when a query ran, the SQL it executed.
package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// failureAnswer is appended when a question cannot be answered. One entry
// per question, success or failure.
const failureAnswer = "Sorry, something went wrong answering that. Please try again."

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the assistant view.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	width  int
	height int

	transcript *model.Transcript
	viewport   viewport.Model
	input      textinput.Model
	spinner    *components.Spinner

	// waiting is true from send until the answer lands. Input is
	// disabled; there is never more than one question in flight.
	waiting bool

	// showSQL toggles the SQL blocks under assistant answers.
	showSQL bool

	markdown *glamour.TermRenderer
}

// New creates the chat view.
func New(theme *styles.Theme, client *api.Client) Model {
	input := textinput.New()
	input.Placeholder = "Ask about the clinic…"
	input.CharLimit = 400
	input.Focus()

	vp := viewport.New(80, 20)

	return Model{
		client:     client,
		theme:      theme,
		transcript: &model.Transcript{},
		viewport:   vp,
		input:      input,
		spinner:    components.NewSpinner(theme),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Title returns the view title for the surrounding frame.
func (m Model) Title() string {
	return "Assistant"
}

// SetSize updates the layout and rebuilds the markdown renderer for the
// new wrap width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 4
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(contentWidth(width)),
	)
	if err == nil {
		m.markdown = renderer
	}
	m.refreshViewport()
}

// contentWidth is the wrap width inside a chat bubble.
func contentWidth(width int) int {
	w := width - 12
	if w < 20 {
		w = 20
	}
	return w
}

// Waiting reports whether a question is in flight.
func (m Model) Waiting() bool {
	return m.waiting
}

// Transcript exposes the conversation for tests.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}
