// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "session.json")

	if err := AtomicWriteFile(path, []byte(`{"token":"abc"}`), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `{"token":"abc"}` {
		t.Errorf("unexpected content: %s", data)
	}

	// Overwrite must replace, not append.
	if err := AtomicWriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `{}` {
		t.Errorf("overwrite left stale content: %s", data)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"hebrew fits", "שלום", 6, "שלום"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWidth(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	got := PadWidth("ok", 5)
	if StringWidth(got) != 5 {
		t.Errorf("PadWidth width = %d, want 5", StringWidth(got))
	}
	if got != "ok   " {
		t.Errorf("PadWidth = %q", got)
	}
}
