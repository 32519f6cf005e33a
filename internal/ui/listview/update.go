// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
package listview

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// toastCmd emits a toast request for the root model.
func toastCmd(message string, kind components.ToastKind) tea.Cmd {
	return func() tea.Msg {
		return components.ShowToastMsg{Message: message, Kind: kind}
	}
}

// Update handles messages for the list view.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner.Advance()
		return m, m.spinner.Tick()

	case itemsLoadedMsg[T]:
		return m.handleLoaded(msg)

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
			// Keep the modal open so the user can fix the input.
			m.form.SetError(api.UserMessage(msg.err))
			return m, nil
		}
		return m, toastCmd(api.UserMessage(msg.err), components.ToastKindError)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInput(msg)
}

// handleLoaded applies a fetched page.
func (m Model[T]) handleLoaded(msg itemsLoadedMsg[T]) (Model[T], tea.Cmd) {
	m.loading = false
	m.items = msg.list.Data
	m.total = msg.list.Total
	if msg.list.Limit > 0 {
		m.limit = msg.list.Limit
	}
	if len(msg.list.PatientsList) > 0 {
		m.refs.Patients = msg.list.PatientsList
	}
	if len(msg.list.Services) > 0 {
		m.refs.Services = msg.list.Services
	}

	// Deleting the last record of the last page can leave the current
	// page past the end of the data; clamp to the last valid page
	// instead of showing a blank table.
	if len(m.items) == 0 && m.total > 0 {
		if page := components.ClampPage(m.page, m.total, m.limit); page != m.page {
			m.page = page
			return m, tea.Batch(m.startLoad(), m.spinner.Tick())
		}
	}

	m.rebuildRows()
	return m, nil
}

// handleKey dispatches a key press by interaction mode.
func (m Model[T]) handleKey(key tea.KeyMsg) (Model[T], tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(key)
	case modeForm:
		return m.handleFormKey(key)
	case modeConfirm:
		return m.handleConfirmKey(key)
	default:
		return m.handleBrowseKey(key)
	}
}

func (m Model[T]) handleBrowseKey(key tea.KeyMsg) (Model[T], tea.Cmd) {
	switch key.String() {
	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink

	case "f":
		if len(m.desc.StatusFilters) == 0 {
			return m, nil
		}
		m.statusIdx = (m.statusIdx + 1) % (len(m.desc.StatusFilters) + 1)
		m.page = 1
		return m, tea.Batch(m.startLoad(), m.spinner.Tick())

	case "up", "k":
		m.table.MoveSelection(-1)
		return m, nil

	case "down", "j":
		m.table.MoveSelection(1)
		return m, nil

	case "left", "h":
		if m.page > 1 {
			m.page--
			return m, tea.Batch(m.startLoad(), m.spinner.Tick())
		}
		return m, nil

	case "right", "l":
		if m.page < components.PageCount(m.total, m.limit) {
			m.page++
			return m, tea.Batch(m.startLoad(), m.spinner.Tick())
		}
		return m, nil

	case "n":
		m.openForm(nil)
		return m, textinput.Blink

	case "e", "enter":
		if sel := m.selected(); sel != nil {
			m.openForm(sel)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if sel := m.selected(); sel != nil {
			m.mode = modeConfirm
			m.confirming = sel
			m.confirmYes = false
		}
		return m, nil

	case "r":
		return m, tea.Batch(m.startLoad(), m.spinner.Tick())
	}

	// Row actions such as marking an invoice paid.
	for _, action := range m.desc.Actions {
		if key.String() == action.Key {
			if sel := m.selected(); sel != nil {
				return m, m.actionCmd(action, m.desc.ID(*sel))
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model[T]) handleSearchKey(key tea.KeyMsg) (Model[T], tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil

	case "enter":
		// A new search always starts from the first page.
		m.mode = modeBrowse
		m.search.Blur()
		m.page = 1
		return m, tea.Batch(m.startLoad(), m.spinner.Tick())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	return m, cmd
}

func (m Model[T]) handleFormKey(key tea.KeyMsg) (Model[T], tea.Cmd) {
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

func (m Model[T]) handleConfirmKey(key tea.KeyMsg) (Model[T], tea.Cmd) {
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

func (m Model[T]) confirmDelete() (Model[T], tea.Cmd) {
	if m.confirming == nil {
		m.closeModal()
		return m, nil
	}
	id := m.desc.ID(*m.confirming)
	return m, m.deleteCmd(id)
}

// openForm opens the create (item nil) or edit modal.
func (m *Model[T]) openForm(item *T) {
	title := "New " + m.desc.Singular
	m.editingID = ""
	if item != nil {
		title = "Edit " + m.desc.Singular
		m.editingID = m.desc.ID(*item)
	}
	m.mode = modeForm
	m.form = NewForm(m.theme, title, m.desc.Fields(item, m.refs))
}

// closeModal returns to browse mode and drops modal state.
func (m *Model[T]) closeModal() {
	m.mode = modeBrowse
	m.form = nil
	m.editingID = ""
	m.confirming = nil
	m.confirmYes = false
}

// forwardToInput lets non-key messages (blink ticks) reach the focused
// input.
func (m Model[T]) forwardToInput(msg tea.Msg) (Model[T], tea.Cmd) {
	switch m.mode {
	case modeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case modeForm:
		if m.form != nil {
			return m, m.form.Update(msg)
		}
	}
	return m, nil
}
