// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package board provides the task board view.
package board

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/listview"
)

// toastCmd emits a toast request for the root model.
func toastCmd(message string, kind components.ToastKind) tea.Cmd {
	return func() tea.Msg {
		return components.ShowToastMsg{Message: message, Kind: kind}
	}
}

// Update handles messages for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner.Advance()
		return m, m.spinner.Tick()

	case boardLoadedMsg:
		m.loading = false
		m.columns = msg.board.Tasks
		if m.columns == nil {
			m.columns = map[string][]model.Task{}
		}
		m.users = msg.board.Users
		m.clampSelection()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		return m, toastCmd(api.UserMessage(msg.err), components.ToastKindError)

	case opDoneMsg:
		m.closeModal()
		return m, tea.Batch(
			toastCmd(msg.message, components.ToastKindSuccess),
			m.startLoad(),
			m.spinner.Tick(),
		)

	case opFailedMsg:
		if m.mode == modeForm && m.form != nil {
			m.form.SetError(api.UserMessage(msg.err))
			return m, nil
		}
		return m, toastCmd(api.UserMessage(msg.err), components.ToastKindError)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeForm && m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.handleFormKey(key)
	case modeConfirm:
		return m.handleConfirmKey(key)
	default:
		return m.handleBrowseKey(key)
	}
}

func (m Model) handleBrowseKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "left", "h":
		if m.focusCol > 0 {
			m.focusCol--
		}
		return m, nil

	case "right", "l":
		if m.focusCol < len(model.TaskStatuses)-1 {
			m.focusCol++
		}
		return m, nil

	case "up", "k":
		if m.selected[m.focusCol] > 0 {
			m.selected[m.focusCol]--
		}
		return m, nil

	case "down", "j":
		if m.selected[m.focusCol] < len(m.columnTasks(m.focusStatus()))-1 {
			m.selected[m.focusCol]++
		}
		return m, nil

	case "[":
		return m.moveSelected(-1)

	case "]":
		return m.moveSelected(1)

	case "n":
		m.openForm(nil)
		return m, textinput.Blink

	case "e", "enter":
		if task := m.selectedTask(); task != nil {
			m.openForm(task)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if task := m.selectedTask(); task != nil {
			m.mode = modeConfirm
			m.confirming = task
			m.confirmYes = false
		}
		return m, nil

	case "r":
		return m, tea.Batch(m.startLoad(), m.spinner.Tick())
	}
	return m, nil
}

// moveSelected shifts the highlighted task one column left or right.
func (m Model) moveSelected(delta int) (Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}
	target := m.focusCol + delta
	if target < 0 || target >= len(model.TaskStatuses) {
		return m, nil
	}
	return m, m.moveCmd(task.ID, model.TaskStatuses[target])
}

func (m Model) handleFormKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "enter":
		values, err := m.form.Values()
		if err != nil {
			m.form.SetError(err.Error())
			return m, nil
		}
		return m, m.submitCmd(m.editingID, values)
	}
	return m, m.form.Update(key)
}

func (m Model) handleConfirmKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc", "n":
		m.closeModal()
		return m, nil

	case "left", "right", "tab":
		m.confirmYes = !m.confirmYes
		return m, nil

	case "y":
		return m.confirmDelete()

	case "enter":
		if m.confirmYes {
			return m.confirmDelete()
		}
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m Model) confirmDelete() (Model, tea.Cmd) {
	if m.confirming == nil {
		m.closeModal()
		return m, nil
	}
	return m, m.deleteCmd(m.confirming.ID)
}

func (m *Model) openForm(task *model.Task) {
	title := "New Task"
	m.editingID = ""
	if task != nil {
		title = "Edit Task"
		m.editingID = task.ID
	}
	m.mode = modeForm
	m.form = listview.NewForm(m.theme, title, m.taskFields(task))
}

func (m *Model) closeModal() {
	m.mode = modeBrowse
	m.form = nil
	m.editingID = ""
	m.confirming = nil
	m.confirmYes = false
}
