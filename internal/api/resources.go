// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/clinic-tui/internal/model"
)

// =============================================================================
// RESPONSE SHAPES
// =============================================================================

// List is the paginated list payload shared by every resource collection.
// The reference collections are only populated for appointments and
// invoices, whose responses bundle them for the relation pickers.
type List[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`

	PatientsList []model.Patient `json:"patients_list,omitempty"`
	Services     []model.Service `json:"services,omitempty"`
}

// Board is the task board payload: tasks grouped by status plus the users
// a task can be assigned to.
type Board struct {
	Tasks map[string][]model.Task `json:"tasks"`
	Users []model.AssignableUser  `json:"users"`
}

// Answer is the chat endpoint's reply.
type Answer struct {
	Answer string `json:"answer"`
	SQL    string `json:"sql,omitempty"`
}

// LoginResult is the authentication endpoint's reply.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// =============================================================================
// GENERIC CRUD
// =============================================================================

// FetchList retrieves one page of a resource collection.
func FetchList[T any](ctx context.Context, c *Client, path string, q ListQuery) (List[T], error) {
	var out List[T]
	err := c.Get(ctx, path+"?"+q.Encode(), &out)
	return out, err
}

// Create posts a new record to a collection endpoint.
func Create(ctx context.Context, c *Client, path string, fields map[string]any) error {
	return c.Do(ctx, http.MethodPost, path, fields, nil)
}

// Update replaces a record's fields.
func Update(ctx context.Context, c *Client, path, id string, fields map[string]any) error {
	return c.Do(ctx, http.MethodPut, path+id, fields, nil)
}

// Delete removes a record.
func Delete(ctx context.Context, c *Client, path, id string) error {
	return c.Do(ctx, http.MethodDelete, path+id, nil, nil)
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.Do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.Get(ctx, "/api/auth/me", &out)
	return out, err
}

// =============================================================================
// RESOURCE-SPECIFIC OPERATIONS
// =============================================================================

// PayInvoice marks an invoice as paid.
func (c *Client) PayInvoice(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodPost, "/api/invoices/"+id+"/pay", nil, nil)
}

// FetchBoard retrieves the task board grouped by status.
func (c *Client) FetchBoard(ctx context.Context) (Board, error) {
	var out Board
	err := c.Get(ctx, "/api/tasks/", &out)
	return out, err
}

// MoveTask changes a single task's status. Position is always zero; the
// server decides ordering within a column.
func (c *Client) MoveTask(ctx context.Context, id, status string) error {
	return c.Do(ctx, http.MethodPut, "/api/tasks/"+id+"/status", map[string]any{
		"status":   status,
		"position": 0,
	}, nil)
}

// DashboardKPIs retrieves the dashboard aggregate snapshot.
func (c *Client) DashboardKPIs(ctx context.Context) (model.DashboardKPIs, error) {
	var out model.DashboardKPIs
	err := c.Get(ctx, "/api/dashboard/kpis", &out)
	return out, err
}

// Ask submits a free-text question to the chat endpoint. The clinic's
// locale is hinted so answers come back in the language of the data.
func (c *Client) Ask(ctx context.Context, question string) (Answer, error) {
	var out Answer
	err := c.Do(ctx, http.MethodPost, "/api/chat/", map[string]string{
		"question": question,
	}, &out, WithHeader("Accept-Language", "he-IL"))
	return out, err
}
