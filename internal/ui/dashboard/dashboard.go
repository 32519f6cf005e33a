// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard provides the landing view: aggregate KPI cards for
// everyone and the churn-risk patient panel for doctors.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
	"github.com/jeranaias/clinic-tui/internal/util"
)

// Churn score thresholds for the risk coloring.
const (
	churnDanger  = 0.7
	churnWarning = 0.4
)

// kpisLoadedMsg delivers the dashboard snapshot.
type kpisLoadedMsg struct {
	kpis model.DashboardKPIs
}

// loadFailedMsg reports a failed snapshot fetch.
type loadFailedMsg struct {
	err error
}

// =============================================================================
// DASHBOARD MODEL
// =============================================================================

// Model is the Bubble Tea model for the dashboard view.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	width    int
	height   int
	isDoctor bool

	kpis    model.DashboardKPIs
	loaded  bool
	loading bool
	spinner *components.Spinner
}

// New creates the dashboard view. isDoctor controls the churn panel.
func New(theme *styles.Theme, client *api.Client, isDoctor bool) Model {
	return Model{
		client:   client,
		theme:    theme,
		isDoctor: isDoctor,
		spinner:  components.NewSpinner(theme),
	}
}

// Init starts the snapshot load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), m.spinner.Tick())
}

// Title returns the view title for the surrounding frame.
func (m Model) Title() string {
	return "Dashboard"
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) startLoad() tea.Cmd {
	m.loading = true
	client := m.client
	return func() tea.Msg {
		kpis, err := client.DashboardKPIs(context.Background())
		if err != nil {
			if errors.Is(err, api.ErrSessionInvalid) {
				return components.SessionExpiredMsg{}
			}
			return loadFailedMsg{err: err}
		}
		return kpisLoadedMsg{kpis: kpis}
	}
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.SpinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner.Advance()
		return m, m.spinner.Tick()

	case kpisLoadedMsg:
		m.loading = false
		m.loaded = true
		m.kpis = msg.kpis
		return m, nil

	case loadFailedMsg:
		m.loading = false
		return m, func() tea.Msg {
			return components.ShowToastMsg{Message: api.UserMessage(msg.err), Kind: components.ToastKindError}
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, tea.Batch(m.startLoad(), m.spinner.Tick())
		}
	}
	return m, nil
}

// View renders the KPI cards and, for doctors, the churn panel.
func (m Model) View() string {
	if m.loading && !m.loaded {
		return m.spinner.View("Loading dashboard…")
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCard("Patients", util.FormatCount(m.kpis.TotalPatients)),
		m.renderCard("Appointments this month", util.FormatCount(m.kpis.MonthlyAppointments)),
		m.renderCard("Revenue this month", util.FormatILS(m.kpis.MonthlyRevenue)),
		m.renderCard("Pending payments", m.pendingSummary()),
	)

	if !m.isDoctor {
		return cards
	}
	return cards + "\n\n" + m.renderChurnPanel()
}

// pendingSummary shows the open invoice count with its total amount.
func (m Model) pendingSummary() string {
	if m.kpis.PendingCount == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%s)", m.kpis.PendingCount, util.FormatILS(m.kpis.PendingTotal))
}

func (m Model) renderCard(label, value string) string {
	content := m.theme.KPIValue.Render(value) + "\n" + m.theme.KPILabel.Render(label)
	return m.theme.KPICard.Render(content)
}

// renderChurnPanel lists the patients the server flags as at risk of not
// returning, colored by score.
func (m Model) renderChurnPanel() string {
	var sb strings.Builder
	sb.WriteString(m.theme.ChurnTitle.Render("Churn risk"))
	sb.WriteString("\n")

	if len(m.kpis.ChurnPatients) == 0 {
		sb.WriteString(m.theme.KPILabel.Render("No patients at risk"))
		return m.theme.ChurnBox.Render(sb.String())
	}

	for i, p := range m.kpis.ChurnPatients {
		score := lipgloss.NewStyle().
			Foreground(churnColor(p.Score)).
			Bold(true).
			Render(fmt.Sprintf("%.0f%%", p.Score*100))
		sb.WriteString(m.theme.ChurnPatient.Render(p.PatientName) + "  " + score)
		if i < len(m.kpis.ChurnPatients)-1 {
			sb.WriteString("\n")
		}
	}
	return m.theme.ChurnBox.Render(sb.String())
}

// churnColor maps a risk score to the shared severity palette.
func churnColor(score float64) lipgloss.AdaptiveColor {
	switch {
	case score > churnDanger:
		return styles.Rose
	case score > churnWarning:
		return styles.Amber
	default:
		return styles.Emerald
	}
}

// Shortcuts returns the status bar hints for the dashboard.
func (m Model) Shortcuts() []components.Shortcut {
	return []components.Shortcut{
		{Key: "r", Desc: "refresh"},
	}
}
