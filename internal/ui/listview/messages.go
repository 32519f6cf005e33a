// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
package listview

import "github.com/jeranaias/clinic-tui/internal/api"

// itemsLoadedMsg delivers one fetched page.
type itemsLoadedMsg[T any] struct {
	list api.List[T]
}

// loadFailedMsg reports a failed page fetch.
type loadFailedMsg struct {
	err error
}

// opDoneMsg reports a completed write operation. The view reloads the
// current page and shows the toast text.
type opDoneMsg struct {
	message string
}

// opFailedMsg reports a failed write operation. Form submissions keep the
// modal open with the server's message; other failures become error
// toasts.
type opFailedMsg struct {
	err error
}
