// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the clinic TUI.

This package defines the color palette, the Theme of pre-built Lip Gloss
styles, and small animation helpers used throughout the application. All
colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

Accent colors:

  - Teal - brand color, active navigation, primary buttons
  - Blue - selections and informational accents
  - Violet - assistant answers and doctor-only surfaces
  - Emerald / Amber / Rose - success, caution and error semantics

Record statuses from appointments, invoices and tasks share one palette
through StatusColor, so "paid" and "done" read as the same green and
"cancelled" and "overdue" as the same red everywhere.

Surface and text colors form two small hierarchies:

	Surface / SurfaceDim / SurfaceBright / Overlay
	TextPrimary / TextSecondary / TextMuted / TextInverse

# Theme System (theme.go)

The Theme struct provides runtime color adaptation and holds every styled
component the views use:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	row := theme.TableRowSelected.Render(line)

# Animation System (animations.go)

Pre-defined spinner styles and a progress bar renderer:

	spinner := styles.LineSpinner
	bar := styles.RenderProgressBar(20, 75)
*/
package styles
