// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CHAT TRANSCRIPT
// =============================================================================

// ChatRole identifies the sender of a transcript entry.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// DisplayName returns a human-readable name for the role.
func (r ChatRole) DisplayName() string {
	switch r {
	case ChatRoleUser:
		return "You"
	case ChatRoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// ChatMessage is one entry of the chat transcript. Assistant entries may
// carry the SQL the server generated for the question, shown collapsed.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	SQL       string    `json:"sql,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserChatMessage creates a user transcript entry.
func NewUserChatMessage(content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      ChatRoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantChatMessage creates an assistant transcript entry.
func NewAssistantChatMessage(content, sql string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      ChatRoleAssistant,
		Content:   content,
		SQL:       sql,
		Timestamp: time.Now(),
	}
}

// Transcript is the ordered, append-only chat history of one session.
type Transcript struct {
	Messages []ChatMessage
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg ChatMessage) {
	t.Messages = append(t.Messages, msg)
}

// Len returns the number of transcript entries.
func (t *Transcript) Len() int {
	return len(t.Messages)
}

// Last returns the most recent entry, or a zero message when empty.
func (t *Transcript) Last() ChatMessage {
	if len(t.Messages) == 0 {
		return ChatMessage{}
	}
	return t.Messages[len(t.Messages)-1]
}
