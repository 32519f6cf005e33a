// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard provides the landing view.
package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

type tokenStub struct{}

func (tokenStub) Token() string { return "tok" }

func sampleKPIs() model.DashboardKPIs {
	return model.DashboardKPIs{
		TotalPatients:       132,
		MonthlyAppointments: 47,
		MonthlyRevenue:      18350,
		PendingCount:        6,
		PendingTotal:        2400,
		ChurnPatients: []model.ChurnPatient{
			{PatientName: "Ruth Levi", Score: 0.85},
			{PatientName: "Dana Mizrahi", Score: 0.55},
			{PatientName: "Yael Peretz", Score: 0.2},
		},
	}
}

func TestChurnPanelOnlyForDoctors(t *testing.T) {
	client := api.NewClient("http://unused.invalid", tokenStub{})

	doctor := New(styles.NewTheme(), client, true)
	doctor, _ = doctor.Update(kpisLoadedMsg{kpis: sampleKPIs()})
	assert.Contains(t, doctor.View(), "Churn risk")
	assert.Contains(t, doctor.View(), "Ruth Levi")

	secretary := New(styles.NewTheme(), client, false)
	secretary, _ = secretary.Update(kpisLoadedMsg{kpis: sampleKPIs()})
	assert.NotContains(t, secretary.View(), "Churn risk")
	assert.NotContains(t, secretary.View(), "Ruth Levi")
}

func TestChurnColorThresholds(t *testing.T) {
	assert.Equal(t, styles.Rose, churnColor(0.85), "high risk is danger")
	assert.Equal(t, styles.Amber, churnColor(0.55), "medium risk is warning")
	assert.Equal(t, styles.Emerald, churnColor(0.2), "low risk is success")

	// Boundary values fall to the lower severity.
	assert.Equal(t, styles.Amber, churnColor(0.7))
	assert.Equal(t, styles.Emerald, churnColor(0.4))
}

func TestViewShowsCounts(t *testing.T) {
	client := api.NewClient("http://unused.invalid", tokenStub{})
	m := New(styles.NewTheme(), client, false)
	m, _ = m.Update(kpisLoadedMsg{kpis: sampleKPIs()})

	view := m.View()
	assert.Contains(t, view, "132")
	assert.Contains(t, view, "47")
	assert.Contains(t, view, "Pending payments")
}

func TestLoadFetchesKPIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard/kpis", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"total_patients": 10, "monthly_appointments": 3, "monthly_revenue": 500, "pending_count": 0, "pending_total": 0}}`))
	}))
	defer server.Close()

	m := New(styles.NewTheme(), api.NewClient(server.URL, tokenStub{}), false)
	msg := m.startLoad()()

	loaded, ok := msg.(kpisLoadedMsg)
	require.True(t, ok, "expected kpisLoadedMsg, got %T", msg)
	assert.Equal(t, 10, loaded.kpis.TotalPatients)
}
