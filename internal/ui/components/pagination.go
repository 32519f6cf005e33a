// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the clinic TUI.
package components

import (
	"fmt"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// PAGINATION
// =============================================================================

// PageCount returns the number of pages for total records at the given
// page size. Zero records still occupy one page so the footer never reads
// "page 1 of 0".
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage bounds a requested page to the valid range.
func ClampPage(page, total, limit int) int {
	pages := PageCount(total, limit)
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// RenderPageInfo renders the pagination footer line.
func RenderPageInfo(theme *styles.Theme, page, total, limit int) string {
	pages := PageCount(total, limit)
	info := fmt.Sprintf("Page %d of %d (%d records)", page, pages, total)
	hints := theme.ShortcutKey.Render("←/→") + theme.ShortcutDesc.Render(" page")
	return theme.PageInfo.Render(info) + "  " + hints
}
