// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package board provides the task board view.
package board

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// tasksPath is the task collection endpoint.
const tasksPath = "/api/tasks/"

// boardLoadedMsg delivers the full board.
type boardLoadedMsg struct {
	board api.Board
}

// loadFailedMsg reports a failed board fetch.
type loadFailedMsg struct {
	err error
}

// opDoneMsg reports a completed write; the board reloads afterwards.
type opDoneMsg struct {
	message string
}

// opFailedMsg reports a failed write.
type opFailedMsg struct {
	err error
}

// wrapErr maps an operation error to the right message.
func wrapErr(err error) tea.Msg {
	if errors.Is(err, api.ErrSessionInvalid) {
		return components.SessionExpiredMsg{}
	}
	return opFailedMsg{err: err}
}

// fetchCmd loads the board grouped by status.
func (m Model) fetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		board, err := client.FetchBoard(context.Background())
		if err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return loadFailedMsg{err: err}
		}
		return boardLoadedMsg{board: board}
	}
}

// moveCmd changes one task's status. The server decides positioning, so
// the follow-up reload is the only way the board learns the new layout.
func (m Model) moveCmd(id, status string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.MoveTask(context.Background(), id, status); err != nil {
			return wrapErr(err)
		}
		return opDoneMsg{message: "Task moved"}
	}
}

// submitCmd creates or updates a task from the form values.
func (m Model) submitCmd(id string, values map[string]any) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var err error
		if id == "" {
			err = api.Create(context.Background(), client, tasksPath, values)
		} else {
			err = api.Update(context.Background(), client, tasksPath, id, values)
		}
		if err != nil {
			return wrapErr(err)
		}
		return opDoneMsg{message: "Task saved"}
	}
}

// deleteCmd removes the confirmed task.
func (m Model) deleteCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := api.Delete(context.Background(), client, tasksPath, id); err != nil {
			return wrapErr(err)
		}
		return opDoneMsg{message: "Task deleted"}
	}
}
