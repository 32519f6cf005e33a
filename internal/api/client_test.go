// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/clinic-tui/internal/model"
)

// staticToken is a TokenSource with a fixed value.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestDoAttachesHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok-123"))
	err := client.Get(context.Background(), "/api/patients/", nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDoMergesCallerHeadersWithoutClobbering(t *testing.T) {
	var gotAuth, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok-123"))
	err := client.Do(context.Background(), http.MethodGet, "/api/patients/", nil, nil,
		WithHeader("Accept-Language", "he-IL"),
		WithHeader("Authorization", "Bearer forged"))

	require.NoError(t, err)
	assert.Equal(t, "he-IL", gotLang, "new caller headers are added")
	assert.Equal(t, "Bearer tok-123", gotAuth, "default headers are never clobbered")
}

func TestDoWithoutTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""))
	require.NoError(t, client.Get(context.Background(), "/api/services/", nil))
	assert.Empty(t, gotAuth)
}

func TestDoUnauthorizedReturnsSessionInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "error": "token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("stale"))
	var out model.User
	err := client.Get(context.Background(), "/api/auth/me", &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSessionInvalid))
}

func TestDoServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "error": "phone is required"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	err := Create(context.Background(), client, "/api/patients/", map[string]any{"first_name": "Dana"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "phone is required", apiErr.Message)
	assert.Equal(t, "phone is required", UserMessage(err))
}

func TestDoServerErrorWithoutMessageFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	err := client.Get(context.Background(), "/api/dashboard/kpis", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "Request failed, please try again", UserMessage(err))
}

func TestFetchListDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ruth", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{"success": true, "data": {
			"data": [{"id": "p1", "full_name": "Ruth Levi", "phone": "050-1234567"}],
			"total": 25, "page": 2, "limit": 10
		}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	page, err := FetchList[model.Patient](context.Background(), client, "/api/patients/", ListQuery{Search: "ruth", Page: 2})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ruth Levi", page.Data[0].FullName)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 10, page.Limit)
}

func TestFetchListBundledReferences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {
			"data": [{"id": "a1", "patient_id": "p1", "service_id": "s1", "status": "scheduled", "patient_name": "Ruth Levi"}],
			"total": 1, "page": 1, "limit": 10,
			"patients_list": [{"id": "p1", "full_name": "Ruth Levi"}],
			"services": [{"id": "s1", "name": "Checkup", "price": 250}]
		}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	page, err := FetchList[model.Appointment](context.Background(), client, "/api/appointments/", ListQuery{Page: 1})

	require.NoError(t, err)
	require.Len(t, page.PatientsList, 1)
	require.Len(t, page.Services, 1)
	assert.Equal(t, "Checkup", page.Services[0].Name)
}

func TestMoveTaskPayload(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	require.NoError(t, client.MoveTask(context.Background(), "t7", "in_progress"))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/tasks/t7/status", gotPath)
	assert.JSONEq(t, `{"status": "in_progress", "position": 0}`, gotBody)
}

func TestAsk(t *testing.T) {
	var gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{"success": true, "data": {"answer": "12 appointments", "sql": "SELECT COUNT(*) FROM appointments"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	answer, err := client.Ask(context.Background(), "כמה תורים יש החודש?")

	require.NoError(t, err)
	assert.Equal(t, "12 appointments", answer.Answer)
	assert.Contains(t, answer.SQL, "SELECT")
	assert.Equal(t, "he-IL", gotLang, "chat questions carry the clinic locale")
}

func TestListQueryEncode(t *testing.T) {
	q := ListQuery{Search: "dana", Status: "pending", Page: 0}
	encoded := q.Encode()
	assert.Contains(t, encoded, "search=dana")
	assert.Contains(t, encoded, "status=pending")
	assert.Contains(t, encoded, "page=1") // zero page normalized to 1

	q2 := ListQuery{}
	assert.NotContains(t, q2.Encode(), "status=")
}
