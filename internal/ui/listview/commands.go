// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
package listview

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// fetchCmd loads one page of the collection.
func (m Model[T]) fetchCmd() tea.Cmd {
	client, path := m.client, m.desc.Path
	query := api.ListQuery{
		Search: m.search.Value(),
		Status: m.statusValue(),
		Page:   m.page,
	}
	return func() tea.Msg {
		list, err := api.FetchList[T](context.Background(), client, path, query)
		if err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return loadFailedMsg{err: err}
		}
		return itemsLoadedMsg[T]{list: list}
	}
}

// submitCmd creates or updates a record from the form values.
func (m Model[T]) submitCmd(id string, values map[string]any) tea.Cmd {
	client, path := m.client, m.desc.Path
	message := m.desc.Singular + " saved"
	return func() tea.Msg {
		var err error
		if id == "" {
			err = api.Create(context.Background(), client, path, values)
		} else {
			err = api.Update(context.Background(), client, path, id, values)
		}
		if err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return opFailedMsg{err: err}
		}
		return opDoneMsg{message: message}
	}
}

// deleteCmd removes the confirmed record.
func (m Model[T]) deleteCmd(id string) tea.Cmd {
	client, path := m.client, m.desc.Path
	message := m.desc.Singular + " deleted"
	return func() tea.Msg {
		if err := api.Delete(context.Background(), client, path, id); err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return opFailedMsg{err: err}
		}
		return opDoneMsg{message: message}
	}
}

// actionCmd runs a row action against the selected record.
func (m Model[T]) actionCmd(action Action, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := action.Do(context.Background(), client, id); err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return opFailedMsg{err: err}
		}
		return opDoneMsg{message: action.Success}
	}
}
