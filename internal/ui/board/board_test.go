// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package board provides the task board view.
package board

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

type tokenStub struct{}

func (tokenStub) Token() string { return "tok" }

const boardBody = `{"success": true, "data": {
	"tasks": {
		"todo": [{"id": "t1", "title": "Order supplies", "status": "todo", "priority": "high"}],
		"in_progress": [{"id": "t2", "title": "Call Mrs. Levi", "status": "in_progress", "priority": "medium", "assigned_to": "u1"}],
		"done": []
	},
	"users": [{"id": "u1", "full_name": "Sara Katz"}]
}}`

// requestLog records the method+path of each request, thread-safe.
type requestLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *requestLog) record(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, r.Method+" "+r.URL.Path)
}

func (l *requestLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

func boardServer(t *testing.T, log *requestLog) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r)
		if r.Method == http.MethodPut {
			w.Write([]byte(`{"success": true}`))
			return
		}
		w.Write([]byte(boardBody))
	}))
}

func loadedModel(t *testing.T, serverURL string) Model {
	t.Helper()
	m := New(styles.NewTheme(), api.NewClient(serverURL, tokenStub{}))
	msg := m.fetchCmd()()
	loaded, ok := msg.(boardLoadedMsg)
	require.True(t, ok, "expected boardLoadedMsg, got %T", msg)
	m, _ = m.Update(loaded)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMoveIssuesOneStatusCallThenOneReload(t *testing.T) {
	log := &requestLog{}
	server := boardServer(t, log)
	defer server.Close()

	m := loadedModel(t, server.URL)
	log.entries = nil

	// Move the selected todo task one column right.
	m, cmd := m.Update(keyMsg("]"))
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(opDoneMsg)
	require.True(t, ok, "move should complete, got %T", msg)

	// The completion triggers exactly one reload.
	m, cmd = m.Update(done)
	require.NotNil(t, cmd)
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			if loaded, ok := sub().(boardLoadedMsg); ok {
				m, _ = m.Update(loaded)
			}
		}
	}

	requests := log.list()
	var moves, reloads int
	for _, r := range requests {
		switch {
		case strings.HasPrefix(r, "PUT /api/tasks/t1/status"):
			moves++
		case r == "GET /api/tasks/":
			reloads++
		}
	}
	assert.Equal(t, 1, moves, "exactly one status call, requests: %v", requests)
	assert.Equal(t, 1, reloads, "exactly one reload, requests: %v", requests)
}

func TestMovePastLastColumnIsNoop(t *testing.T) {
	log := &requestLog{}
	server := boardServer(t, log)
	defer server.Close()

	m := loadedModel(t, server.URL)
	m.focusCol = 2 // done column, empty

	_, cmd := m.Update(keyMsg("]"))
	assert.Nil(t, cmd, "moving from an empty or last column does nothing")
}

func TestUnknownStatusRendersNowhere(t *testing.T) {
	m := New(styles.NewTheme(), api.NewClient("http://unused.invalid", tokenStub{}))
	m, _ = m.Update(boardLoadedMsg{board: api.Board{
		Tasks: map[string][]model.Task{
			"todo":     {{ID: "t1", Title: "Visible task", Status: "todo"}},
			"archived": {{ID: "t9", Title: "Ghost task", Status: "archived"}},
		},
	}})

	view := m.View()
	assert.Contains(t, view, "Visible task")
	assert.NotContains(t, view, "Ghost task", "unknown statuses must not render")
}

func TestColumnFocusClamped(t *testing.T) {
	log := &requestLog{}
	server := boardServer(t, log)
	defer server.Close()

	m := loadedModel(t, server.URL)

	for i := 0; i < 5; i++ {
		m, _ = m.Update(keyMsg("right"))
	}
	assert.Equal(t, 2, m.focusCol, "focus clamps at the last column")
}

func TestAssigneeNameResolved(t *testing.T) {
	log := &requestLog{}
	server := boardServer(t, log)
	defer server.Close()

	m := loadedModel(t, server.URL)
	view := m.View()
	assert.Contains(t, view, "Sara Katz", "assignee names come from the bundled users")
}

func TestFormRequiresTitle(t *testing.T) {
	log := &requestLog{}
	server := boardServer(t, log)
	defer server.Close()

	m := loadedModel(t, server.URL)
	m, _ = m.Update(keyMsg("n"))
	require.Equal(t, modeForm, m.mode)

	m, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.form.View(), "Title is required")
}
