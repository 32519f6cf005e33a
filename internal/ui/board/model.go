// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package board provides the task board view: three fixed status columns
// with keyboard-driven card movement. The server owns ordering; every
// move is one status call followed by one full reload.
package board

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/listview"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// columnLabels maps each status to its fixed display label.
var columnLabels = map[string]string{
	model.TaskTodo:       "To Do",
	model.TaskInProgress: "In Progress",
	model.TaskDone:       "Done",
}

// mode is the interaction mode of the board.
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
)

// taskPriorities are the selectable priorities, low to high.
var taskPriorities = []string{"low", "medium", "high"}

// =============================================================================
// BOARD MODEL
// =============================================================================

// Model is the Bubble Tea model for the task board.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	width  int
	height int

	// Data. columns is keyed by status; statuses outside the fixed three
	// never render.
	columns map[string][]model.Task
	users   []model.AssignableUser

	// Browse state
	focusCol int
	selected [3]int
	loading  bool
	spinner  *components.Spinner

	// Modal state
	mode       mode
	form       *listview.Form
	editingID  string
	confirming *model.Task
	confirmYes bool
}

// New creates the board view.
func New(theme *styles.Theme, client *api.Client) Model {
	return Model{
		client:  client,
		theme:   theme,
		columns: map[string][]model.Task{},
		spinner: components.NewSpinner(theme),
	}
}

// Init starts the first board load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), m.spinner.Tick())
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Title returns the view title for the surrounding frame.
func (m Model) Title() string {
	return "Tasks"
}

// Capturing reports whether a modal is consuming text input.
func (m Model) Capturing() bool {
	return m.mode != modeBrowse
}

func (m *Model) startLoad() tea.Cmd {
	m.loading = true
	return m.fetchCmd()
}

// focusStatus returns the status of the focused column.
func (m Model) focusStatus() string {
	return model.TaskStatuses[m.focusCol]
}

// columnTasks returns the tasks of one column in server order.
func (m Model) columnTasks(status string) []model.Task {
	return m.columns[status]
}

// selectedTask returns the highlighted task, nil when the focused column
// is empty.
func (m Model) selectedTask() *model.Task {
	tasks := m.columnTasks(m.focusStatus())
	idx := m.selected[m.focusCol]
	if idx < 0 || idx >= len(tasks) {
		return nil
	}
	return &tasks[idx]
}

// clampSelection bounds every column's selection to its task count.
func (m *Model) clampSelection() {
	for i, status := range model.TaskStatuses {
		count := len(m.columns[status])
		if m.selected[i] >= count {
			m.selected[i] = count - 1
		}
		if m.selected[i] < 0 {
			m.selected[i] = 0
		}
	}
}

// taskFields builds the create/edit form fields. The assignee picker is
// fed from the users bundled with the board response.
func (m Model) taskFields(task *model.Task) []listview.Field {
	title, description, status, priority, assignedTo := "", "", model.TaskTodo, "medium", ""
	if task != nil {
		title = task.Title
		description = task.Description
		status = task.Status
		priority = task.Priority
		assignedTo = task.AssignedTo
	}

	userOptions := make([]listview.Option, 0, len(m.users)+1)
	userOptions = append(userOptions, listview.Option{Value: "", Label: "Unassigned"})
	for _, u := range m.users {
		userOptions = append(userOptions, listview.Option{Value: u.ID, Label: u.FullName})
	}

	return []listview.Field{
		{Name: "title", Label: "Title", Required: true, Initial: title},
		{Name: "description", Label: "Description", Initial: description},
		{Name: "status", Label: "Status", Kind: listview.FieldSelect,
			Options: listview.StatusOptions(model.TaskStatuses), Initial: status},
		{Name: "priority", Label: "Priority", Kind: listview.FieldSelect,
			Options: listview.StatusOptions(taskPriorities), Initial: priority},
		{Name: "assigned_to", Label: "Assigned to", Kind: listview.FieldSelect,
			Options: userOptions, Initial: assignedTo},
	}
}
