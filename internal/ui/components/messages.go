// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

// Messages shared across views. Child views emit these; the root model
// intercepts them on the way through the update loop.

// ShowToastMsg asks the root model to display a toast. The zero Kind is
// ToastKindInfo.
type ShowToastMsg struct {
	Message string
	Kind    ToastKind
}

// SessionExpiredMsg reports that a request was rejected with an
// authorization failure. The root model clears the session and swaps to
// the login view in the same update cycle.
type SessionExpiredMsg struct{}
