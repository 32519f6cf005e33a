// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the sign-in view: email and masked password
// inputs against the authentication endpoint.
package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/session"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// SuccessMsg reports a completed sign-in. The root model swaps to the
// authenticated frame when it sees this.
type SuccessMsg struct{}

// failedMsg carries a sign-in failure back to the view.
type failedMsg struct {
	err error
}

// =============================================================================
// LOGIN MODEL
// =============================================================================

// Model is the Bubble Tea model for the sign-in view.
type Model struct {
	client *api.Client
	store  *session.Store
	theme  *styles.Theme

	width  int
	height int

	email    textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	errText    string
	spinner    *components.Spinner
}

// New creates the sign-in view.
func New(theme *styles.Theme, client *api.Client, store *session.Store) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		client:   client,
		store:    store,
		theme:    theme,
		email:    email,
		password: password,
		spinner:  components.NewSpinner(theme),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reset clears both inputs and any error, for when the view is shown
// again after a logout or session expiry.
func (m *Model) Reset(notice string) {
	m.email.SetValue("")
	m.password.SetValue("")
	m.errText = notice
	m.submitting = false
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
}

// Update handles messages for the sign-in view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if !m.submitting {
			return m, nil
		}
		m.spinner.Advance()
		return m, m.spinner.Tick()

	case failedMsg:
		m.submitting = false
		m.errText = loginErrorText(msg.err)
		m.password.SetValue("")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch key.String() {
	case "tab", "shift+tab", "up", "down":
		m.toggleFocus()
		return m, nil

	case "enter":
		return m.submit()
	}

	return m.updateFocused(key)
}

func (m *Model) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.email.Blur()
		m.password.Focus()
	} else {
		m.focus = 0
		m.password.Blur()
		m.email.Focus()
	}
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit validates the inputs and issues the sign-in request.
func (m Model) submit() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if email == "" || password == "" {
		m.errText = "Email and password are required"
		return m, nil
	}

	m.submitting = true
	m.errText = ""

	store, client := m.store, m.client
	loginCmd := func() tea.Msg {
		if err := store.Login(context.Background(), client, email, password); err != nil {
			return failedMsg{err: err}
		}
		return SuccessMsg{}
	}
	return m, tea.Batch(loginCmd, m.spinner.Tick())
}

// loginErrorText maps a sign-in failure to the inline message. A 401 here
// means bad credentials, not an expired session; there is nothing stored
// to clear yet.
func loginErrorText(err error) string {
	if errors.Is(err, api.ErrSessionInvalid) {
		return "Invalid email or password"
	}
	return api.UserMessage(err)
}

// View renders the centered sign-in box.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.theme.LoginTitle.Render("Clinic Sign In"))
	sb.WriteString("\n\n")
	sb.WriteString(m.email.View())
	sb.WriteString("\n")
	sb.WriteString(m.password.View())
	sb.WriteString("\n\n")

	switch {
	case m.submitting:
		sb.WriteString(m.spinner.View("Signing in…"))
	case m.errText != "":
		sb.WriteString(m.theme.LoginError.Render(m.errText))
	default:
		sb.WriteString(m.theme.LoginHint.Render("enter to sign in"))
	}

	box := m.theme.LoginBox.Render(sb.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
