// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable UI components for the clinic TUI.

Components here are view-agnostic building blocks shared by the resource
lists, the task board, the chat view and the dashboard:

  - Header: title bar with the signed-in user and role badge
  - Sidebar: navigation column with role-gated entries
  - Table: fixed-layout record table with selection highlight
  - Pagination: page math and the footer line
  - ToastManager: stacked auto-dismissing notifications
  - RenderModal / RenderConfirm: centered modal frames
  - Spinner: loading indicator for in-flight requests
  - StatusBar: contextual shortcut hints

Components take a *styles.Theme and render to strings; they hold no API
or session state.
*/
package components
