// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational query view.
package chat

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// View renders the transcript above the input line.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.waiting {
		sb.WriteString(m.spinner.View("Thinking…"))
	} else {
		sb.WriteString(m.theme.ChatInput.Render(m.input.View()))
	}

	return sb.String()
}

// refreshViewport re-renders the transcript into the viewport and scrolls
// to the newest entry.
func (m *Model) refreshViewport() {
	var sb strings.Builder

	if m.transcript.Len() == 0 {
		sb.WriteString(m.theme.ChatWaiting.Render("Ask a question about patients, appointments or revenue."))
	}

	for i, msg := range m.transcript.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.renderMessage(msg))
	}

	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}

// renderMessage renders one transcript entry as a bubble.
func (m *Model) renderMessage(msg model.ChatMessage) string {
	if msg.Role == model.ChatRoleUser {
		return m.theme.UserBubble.Render(msg.Content)
	}

	content := m.renderAnswer(msg.Content)
	bubble := m.theme.AssistantBubble.Render(content)

	if msg.SQL == "" {
		return bubble
	}
	if !m.showSQL {
		hint := m.theme.ChatWaiting.Render("ctrl+s to show SQL")
		return bubble + "\n" + hint
	}
	return bubble + "\n" + m.theme.SQLBlock.Render(m.highlightSQL(msg.SQL))
}

// renderAnswer renders answer markdown, falling back to the raw text when
// the renderer is unavailable.
func (m *Model) renderAnswer(content string) string {
	if m.markdown == nil {
		return content
	}
	rendered, err := m.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

// highlightSQL colorizes the generated SQL, falling back to plain text.
func (m *Model) highlightSQL(sql string) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, sql, "sql", "terminal256", "monokai"); err != nil {
		return sql
	}
	return sb.String()
}

// Shortcuts returns the status bar hints for the chat view.
func (m Model) Shortcuts() []components.Shortcut {
	return []components.Shortcut{
		{Key: "enter", Desc: "ask"},
		{Key: "ctrl+s", Desc: "toggle sql"},
		{Key: "pgup/pgdn", Desc: "scroll"},
	}
}
