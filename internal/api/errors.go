// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

// Error variables for common API failures.
var (
	// ErrSessionInvalid indicates the server rejected the credential token.
	// The request layer never navigates on this; the root model observes it,
	// clears the session and swaps to the login view.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrServer is the generic fallback when the server gave no usable
	// error message.
	ErrServer = errors.New("server error")
)

// APIError carries the server's structured error message for a non-success
// status other than an authorization failure.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d)", e.Status)
}

// UserMessage returns the text to surface in a toast: the server's message
// when present, otherwise a generic fallback. Network and parse failures
// are deliberately not distinguished from business errors here.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrSessionInvalid) {
		return "Session expired, please sign in again"
	}
	return "Request failed, please try again"
}
