// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app contains the root Bubble Tea model: the route guard that
// decides between the sign-in view and the authenticated frame, the view
// switcher, and the toast overlay.
//
// Session-expiry handling lives here and only here. Child views surface a
// components.SessionExpiredMsg when any request comes back unauthorized;
// this model clears the session and swaps to the sign-in view in the same
// update cycle, so the redirect happens exactly once no matter how many
// requests fail together.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/session"
	"github.com/jeranaias/clinic-tui/internal/ui/board"
	"github.com/jeranaias/clinic-tui/internal/ui/chat"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/dashboard"
	"github.com/jeranaias/clinic-tui/internal/ui/listview"
	"github.com/jeranaias/clinic-tui/internal/ui/login"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// ROUTE STATE
// =============================================================================

// routeState is the top-level routing state.
type routeState int

const (
	stateLogin   routeState = iota // no token, sign-in view only
	stateProfile                   // token restored, profile fetch in flight
	stateReady                     // authenticated frame
)

// viewID identifies one protected view.
type viewID int

const (
	viewDashboard viewID = iota
	viewPatients
	viewServices
	viewAppointments
	viewInvoices
	viewTasks
	viewChat
)

// navEntry binds a sidebar item to its view.
type navEntry struct {
	item   components.NavItem
	target viewID
}

// navEntries is the full navigation in display order. The assistant is
// only reachable by doctors; the sidebar hides it for everyone else.
var navEntries = []navEntry{
	{components.NavItem{Label: "Dashboard", Key: "1"}, viewDashboard},
	{components.NavItem{Label: "Patients", Key: "2"}, viewPatients},
	{components.NavItem{Label: "Services", Key: "3"}, viewServices},
	{components.NavItem{Label: "Appointments", Key: "4"}, viewAppointments},
	{components.NavItem{Label: "Invoices", Key: "5"}, viewInvoices},
	{components.NavItem{Label: "Tasks", Key: "6"}, viewTasks},
	{components.NavItem{Label: "Assistant", Key: "7", DoctorOnly: true}, viewChat},
}

// profileLoadedMsg delivers the profile fetched for a restored token.
type profileLoadedMsg struct {
	user model.User
}

// profileFailedMsg reports that the restored token could not be verified.
type profileFailedMsg struct {
	err error
}

const sidebarWidth = 20

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root application model.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	store  *session.Store

	state  routeState
	active viewID
	width  int
	height int

	login        login.Model
	dashboard    dashboard.Model
	patients     listview.Model[model.Patient]
	services     listview.Model[model.Service]
	appointments listview.Model[model.Appointment]
	invoices     listview.Model[model.Invoice]
	tasks        board.Model
	chat         chat.Model

	header    *components.Header
	sidebar   *components.Sidebar
	statusBar *components.StatusBar
	toasts    *components.ToastManager
}

// New creates the root model. The store decides the initial route: no
// token means sign-in, a token without a profile means a verification
// fetch, a full session goes straight to the dashboard.
func New(theme *styles.Theme, client *api.Client, store *session.Store) Model {
	items := make([]components.NavItem, len(navEntries))
	for i, entry := range navEntries {
		items[i] = entry.item
	}

	m := Model{
		theme:        theme,
		client:       client,
		store:        store,
		login:        login.New(theme, client, store),
		dashboard:    dashboard.New(theme, client, store.IsDoctor()),
		patients:     listview.New(theme, client, patientDescriptor()),
		services:     listview.New(theme, client, serviceDescriptor()),
		appointments: listview.New(theme, client, appointmentDescriptor()),
		invoices:     listview.New(theme, client, invoiceDescriptor()),
		tasks:        board.New(theme, client),
		chat:         chat.New(theme, client),
		header:       components.NewHeader(theme),
		sidebar:      components.NewSidebar(theme, items),
		statusBar:    components.NewStatusBar(theme),
		toasts:       components.NewToastManager(),
	}

	switch {
	case !store.IsAuthenticated():
		m.state = stateLogin
	case store.NeedsProfile():
		m.state = stateProfile
	default:
		m.enterFrame()
	}
	return m
}

// Init starts whichever route the store put us on.
func (m Model) Init() tea.Cmd {
	switch m.state {
	case stateProfile:
		return m.fetchProfileCmd()
	case stateReady:
		return m.dashboard.Init()
	default:
		return m.login.Init()
	}
}

// fetchProfileCmd verifies a restored token by fetching the profile.
func (m Model) fetchProfileCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		user, err := client.Me(context.Background())
		if err != nil {
			return profileFailedMsg{err: err}
		}
		return profileLoadedMsg{user: user}
	}
}

// enterFrame switches to the authenticated frame on the dashboard. The
// dashboard is rebuilt because the doctor gate may have changed since
// construction.
func (m *Model) enterFrame() {
	m.state = stateReady
	m.active = viewDashboard
	m.header.SetUser(m.store.User())
	m.sidebar.IsDoctor = m.store.IsDoctor()
	m.sidebar.Active = 0
	m.dashboard = dashboard.New(m.theme, m.client, m.store.IsDoctor())
	m.applySizes()
}

// toLogin drops back to the sign-in view with an optional notice.
func (m *Model) toLogin(notice string) {
	m.state = stateLogin
	m.toasts.Clear()
	m.login.Reset(notice)
	m.login.SetSize(m.width, m.height)
}

// Update is the root message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil

	case components.ShowToastMsg:
		m.toasts.Notify(msg.Message, msg.Kind)
		return m, components.ToastTickCmd()

	case components.ToastTickMsg:
		m.toasts.Tick()
		if m.toasts.HasToasts() {
			return m, components.ToastTickCmd()
		}
		return m, nil

	case components.SessionExpiredMsg:
		m.store.Clear()
		m.toLogin("Session expired, please sign in again")
		return m, nil

	case login.SuccessMsg:
		m.enterFrame()
		return m, m.dashboard.Init()

	case profileLoadedMsg:
		if err := m.store.SetProfile(msg.user); err != nil {
			m.store.Clear()
			m.toLogin(api.UserMessage(err))
			return m, nil
		}
		m.enterFrame()
		return m, m.dashboard.Init()

	case profileFailedMsg:
		// A restored token that cannot be verified is discarded, whatever
		// the failure was. Credentials are cheap to re-enter.
		m.store.Clear()
		m.toLogin("Please sign in again")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

// handleKey routes keys: a few global shortcuts first, everything else to
// the active view.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state != stateReady {
		return m.forward(key)
	}

	switch key.String() {
	case "ctrl+l":
		m.store.Logout()
		m.toLogin("")
		return m, nil

	case "esc":
		// The assistant's input is always focused, so esc is its only way
		// back out. Other views use esc for their own modals.
		if m.active == viewChat && !m.chat.Waiting() {
			cmd := m.switchTo(viewDashboard)
			return m, cmd
		}
	}

	if !m.capturing() {
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			return m.handleNavKey(key.String())
		}
	}

	return m.forward(key)
}

// handleNavKey maps a digit onto the role-filtered sidebar entries.
func (m Model) handleNavKey(digit string) (tea.Model, tea.Cmd) {
	idx := int(digit[0]-'0') - 1
	visible := m.visibleEntries()
	if idx < 0 || idx >= len(visible) {
		return m, nil
	}
	cmd := m.switchTo(visible[idx].target)
	return m, cmd
}

// visibleEntries returns the navigation entries the current role may open.
func (m Model) visibleEntries() []navEntry {
	visible := make([]navEntry, 0, len(navEntries))
	for _, entry := range navEntries {
		if entry.item.DoctorOnly && !m.store.IsDoctor() {
			continue
		}
		visible = append(visible, entry)
	}
	return visible
}

// switchTo activates a view and starts its reload. Every visit refetches;
// the client never trusts a stale page.
func (m *Model) switchTo(target viewID) tea.Cmd {
	if target == viewChat && !m.store.IsDoctor() {
		return nil
	}
	m.active = target
	for i, entry := range m.visibleEntries() {
		if entry.target == target {
			m.sidebar.Active = i
			break
		}
	}
	m.applySizes()

	switch target {
	case viewDashboard:
		return m.dashboard.Init()
	case viewPatients:
		return m.patients.Init()
	case viewServices:
		return m.services.Init()
	case viewAppointments:
		return m.appointments.Init()
	case viewInvoices:
		return m.invoices.Init()
	case viewTasks:
		return m.tasks.Init()
	case viewChat:
		return m.chat.Init()
	}
	return nil
}

// capturing reports whether the active view is consuming raw text input.
func (m Model) capturing() bool {
	switch m.active {
	case viewPatients:
		return m.patients.Capturing()
	case viewServices:
		return m.services.Capturing()
	case viewAppointments:
		return m.appointments.Capturing()
	case viewInvoices:
		return m.invoices.Capturing()
	case viewTasks:
		return m.tasks.Capturing()
	case viewChat:
		return true
	}
	return false
}

// forward delivers a message to the view that owns the screen.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.state != stateReady {
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}

	switch m.active {
	case viewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case viewPatients:
		m.patients, cmd = m.patients.Update(msg)
	case viewServices:
		m.services, cmd = m.services.Update(msg)
	case viewAppointments:
		m.appointments, cmd = m.appointments.Update(msg)
	case viewInvoices:
		m.invoices, cmd = m.invoices.Update(msg)
	case viewTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case viewChat:
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

// applySizes pushes the current terminal size into every surface.
func (m *Model) applySizes() {
	if m.width == 0 {
		return
	}
	m.theme.SetSize(m.width, m.height)
	m.login.SetSize(m.width, m.height)
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)

	contentWidth := m.width - sidebarWidth - 4
	if contentWidth < 40 {
		contentWidth = 40
	}
	contentHeight := m.height - 6
	if contentHeight < 10 {
		contentHeight = 10
	}
	m.sidebar.Height = contentHeight

	m.dashboard.SetSize(contentWidth, contentHeight)
	m.patients.SetSize(contentWidth, contentHeight)
	m.services.SetSize(contentWidth, contentHeight)
	m.appointments.SetSize(contentWidth, contentHeight)
	m.invoices.SetSize(contentWidth, contentHeight)
	m.tasks.SetSize(contentWidth, contentHeight)
	m.chat.SetSize(contentWidth, contentHeight)
}

// View renders the current route.
func (m Model) View() string {
	if m.state == stateLogin {
		return m.login.View()
	}
	if m.state == stateProfile {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.theme.LoadingText.Render("Restoring session…"))
	}

	m.statusBar.SetShortcuts(m.activeShortcuts())

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", m.activeView())
	frame := lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.statusBar.View())

	if m.toasts.HasToasts() {
		return components.OverlayToasts(m.theme, frame, m.toasts.Toasts(), m.width)
	}
	return frame
}

// activeView renders the view that owns the content area.
func (m Model) activeView() string {
	switch m.active {
	case viewPatients:
		return m.patients.View()
	case viewServices:
		return m.services.View()
	case viewAppointments:
		return m.appointments.View()
	case viewInvoices:
		return m.invoices.View()
	case viewTasks:
		return m.tasks.View()
	case viewChat:
		return m.chat.View()
	default:
		return m.dashboard.View()
	}
}

// activeShortcuts combines the active view's hints with the global ones.
func (m Model) activeShortcuts() []components.Shortcut {
	var local []components.Shortcut
	switch m.active {
	case viewPatients:
		local = m.patients.Shortcuts()
	case viewServices:
		local = m.services.Shortcuts()
	case viewAppointments:
		local = m.appointments.Shortcuts()
	case viewInvoices:
		local = m.invoices.Shortcuts()
	case viewTasks:
		local = m.tasks.Shortcuts()
	case viewChat:
		local = m.chat.Shortcuts()
	default:
		local = m.dashboard.Shortcuts()
	}

	global := []components.Shortcut{
		{Key: "1-7", Desc: "views"},
		{Key: "ctrl+l", Desc: "logout"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	return append(local, global...)
}
