// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational query view.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if !m.waiting {
			return m, nil
		}
		m.spinner.Advance()
		return m, m.spinner.Tick()

	case answerMsg:
		m.waiting = false
		m.transcript.Append(model.NewAssistantChatMessage(msg.answer.Answer, msg.answer.SQL))
		m.input.Focus()
		m.refreshViewport()
		return m, nil

	case answerFailedMsg:
		m.waiting = false
		m.transcript.Append(model.NewAssistantChatMessage(failureAnswer, ""))
		m.input.Focus()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		return m.ask()

	case "ctrl+s":
		m.showSQL = !m.showSQL
		m.refreshViewport()
		return m, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd
	}

	if m.waiting {
		// Input is disabled while a question is in flight.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// ask submits the typed question. The user entry is appended immediately;
// the assistant entry arrives with the answer.
func (m Model) ask() (Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return m, nil
	}

	m.transcript.Append(model.NewUserChatMessage(question))
	m.input.SetValue("")
	m.input.Blur()
	m.waiting = true
	m.refreshViewport()

	return m, tea.Batch(m.askCmd(question), m.spinner.Tick())
}
