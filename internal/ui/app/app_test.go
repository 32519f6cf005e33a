// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/session"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/login"
	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// seedSession writes a persisted session and restores it into a store.
func seedSession(t *testing.T, raw string) *session.Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, session.FileName), []byte(raw), 0o600))
	store := session.NewStore(dir)
	require.NoError(t, store.Restore())
	return store
}

func doctorStore(t *testing.T) *session.Store {
	return seedSession(t, `{"token": "tok", "user": {"user_id": "u1", "full_name": "Dr. Cohen", "role": "doctor"}}`)
}

func secretaryStore(t *testing.T) *session.Store {
	return seedSession(t, `{"token": "tok", "user": {"user_id": "u2", "full_name": "Rivka Adler", "role": "secretary"}}`)
}

func newApp(t *testing.T, store *session.Store) Model {
	t.Helper()
	return New(styles.NewTheme(), api.NewClient("http://unused.invalid", store), store)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNoTokenShowsLoginOnly(t *testing.T) {
	store := session.NewStore(t.TempDir())
	m := newApp(t, store)

	assert.Equal(t, stateLogin, m.state)
	assert.Contains(t, m.View(), "Clinic Sign In")
}

func TestRestoredSessionOpensDashboard(t *testing.T) {
	m := newApp(t, doctorStore(t))

	assert.Equal(t, stateReady, m.state)
	assert.Equal(t, viewDashboard, m.active)
	view := m.View()
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Dr. Cohen")
}

func TestTokenWithoutProfileVerifiesFirst(t *testing.T) {
	store := seedSession(t, `{"token": "tok"}`)
	m := newApp(t, store)

	require.Equal(t, stateProfile, m.state)

	updated, _ := m.Update(profileLoadedMsg{user: model.User{
		UserID: "u1", FullName: "Dr. Cohen", Role: model.RoleDoctor,
	}})
	m = updated.(Model)
	assert.Equal(t, stateReady, m.state)
	assert.True(t, store.IsDoctor())
}

func TestProfileFetchFailureDropsToLogin(t *testing.T) {
	store := seedSession(t, `{"token": "tok"}`)
	m := newApp(t, store)

	updated, _ := m.Update(profileFailedMsg{err: assert.AnError})
	m = updated.(Model)
	assert.Equal(t, stateLogin, m.state)
	assert.False(t, store.IsAuthenticated())
}

func TestChatHiddenFromSecretaries(t *testing.T) {
	m := newApp(t, secretaryStore(t))

	assert.Len(t, m.visibleEntries(), len(navEntries)-1)
	assert.NotContains(t, m.View(), "Assistant")

	// The digit that would reach the assistant maps to nothing.
	updated, cmd := m.Update(key("7"))
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, viewDashboard, m.active)
}

func TestDoctorCanOpenChat(t *testing.T) {
	m := newApp(t, doctorStore(t))

	require.Len(t, m.visibleEntries(), len(navEntries))
	updated, cmd := m.Update(key("7"))
	m = updated.(Model)
	assert.Equal(t, viewChat, m.active)
	assert.NotNil(t, cmd)
}

func TestDigitSwitchesView(t *testing.T) {
	m := newApp(t, secretaryStore(t))

	updated, cmd := m.Update(key("2"))
	m = updated.(Model)
	assert.Equal(t, viewPatients, m.active)
	assert.NotNil(t, cmd, "switching starts a reload")
	assert.Contains(t, m.View(), "Patients")
}

func TestSessionExpiredSwapsToLoginInOneCycle(t *testing.T) {
	store := doctorStore(t)
	m := newApp(t, store)
	require.Equal(t, stateReady, m.state)

	updated, _ := m.Update(components.SessionExpiredMsg{})
	m = updated.(Model)

	assert.Equal(t, stateLogin, m.state)
	assert.False(t, store.IsAuthenticated())
	assert.Contains(t, m.View(), "Session expired")
}

func TestLogoutClearsSession(t *testing.T) {
	store := doctorStore(t)
	m := newApp(t, store)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)

	assert.Equal(t, stateLogin, m.state)
	assert.False(t, store.IsAuthenticated())
}

func TestLoginSuccessEntersFrame(t *testing.T) {
	store := doctorStore(t)
	m := newApp(t, store)
	m.state = stateLogin

	updated, cmd := m.Update(login.SuccessMsg{})
	m = updated.(Model)
	assert.Equal(t, stateReady, m.state)
	assert.Equal(t, viewDashboard, m.active)
	assert.NotNil(t, cmd)
}

func TestToastStackedAndTicked(t *testing.T) {
	m := newApp(t, doctorStore(t))

	updated, cmd := m.Update(components.ShowToastMsg{Message: "Patient saved", Kind: components.ToastKindSuccess})
	m = updated.(Model)
	require.NotNil(t, cmd, "a toast schedules its expiry tick")
	assert.True(t, m.toasts.HasToasts())
	assert.Contains(t, m.View(), "Patient saved")
}

func TestCtrlCQuitsEverywhere(t *testing.T) {
	m := newApp(t, doctorStore(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
