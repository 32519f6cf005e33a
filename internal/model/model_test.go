// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

func TestUserIsDoctor(t *testing.T) {
	doctor := User{Role: RoleDoctor}
	if !doctor.IsDoctor() {
		t.Error("doctor role should report IsDoctor")
	}

	secretary := User{Role: RoleSecretary}
	if secretary.IsDoctor() {
		t.Error("secretary role should not report IsDoctor")
	}

	unknown := User{Role: "admin"}
	if unknown.IsDoctor() {
		t.Error("unknown role should not report IsDoctor")
	}
}

func TestTranscriptAppendOnly(t *testing.T) {
	var tr Transcript

	if tr.Len() != 0 {
		t.Fatalf("new transcript should be empty, got %d", tr.Len())
	}

	tr.Append(NewUserChatMessage("כמה תורים יש החודש?"))
	tr.Append(NewAssistantChatMessage("12 appointments this month.", "SELECT COUNT(*) FROM appointments"))

	if tr.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tr.Len())
	}
	if tr.Messages[0].Role != ChatRoleUser {
		t.Error("first entry should be the user message")
	}
	last := tr.Last()
	if last.Role != ChatRoleAssistant || last.SQL == "" {
		t.Error("last entry should be the assistant message with SQL")
	}
}

func TestChatMessageIDsDistinct(t *testing.T) {
	a := NewUserChatMessage("a")
	b := NewUserChatMessage("b")
	if a.ID == b.ID {
		t.Error("message IDs must be unique")
	}
	if a.ID == "" {
		t.Error("message ID must be set")
	}
}
