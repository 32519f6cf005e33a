// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the clinic TUI.
package styles

import (
	"strings"
	"testing"
	"time"
)

func TestSpinnerDuration(t *testing.T) {
	if d := LineSpinner.Duration(); d != 100*time.Millisecond {
		t.Errorf("LineSpinner.Duration() = %v, want 100ms", d)
	}
}

func TestRenderProgressBar(t *testing.T) {
	cases := []struct {
		width   int
		percent float64
		want    string
	}{
		{10, 0, "----------"},
		{10, 50, "#####-----"},
		{10, 100, "##########"},
		{10, 150, "##########"}, // clamped
		{10, -5, "----------"},  // clamped
		{0, 50, ""},
	}

	for _, c := range cases {
		if got := RenderProgressBar(c.width, c.percent); got != c.want {
			t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", c.width, c.percent, got, c.want)
		}
	}
}

func TestRenderProgressBarWidth(t *testing.T) {
	for _, percent := range []float64{0, 33, 66, 100} {
		bar := RenderProgressBar(20, percent)
		if len(bar) != 20 {
			t.Errorf("bar at %v%% has width %d, want 20", percent, len(bar))
		}
		if strings.ContainsAny(bar, " ") {
			t.Errorf("bar should only use fill characters, got %q", bar)
		}
	}
}
