// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational query view.
package chat

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// answerMsg delivers a successful answer.
type answerMsg struct {
	answer api.Answer
}

// answerFailedMsg reports a failed question. The transcript still gets
// exactly one assistant entry, with a generic failure text.
type answerFailedMsg struct {
	err error
}

// askCmd submits one question to the chat endpoint.
func (m Model) askCmd(question string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		answer, err := client.Ask(context.Background(), question)
		if err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return answerFailedMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}
