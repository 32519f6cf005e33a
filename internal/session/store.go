// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the credential token and user profile for the
// current sign-in, in memory and on disk.
//
// The store is the only component besides the request gateway allowed to
// touch persisted credentials. Everything else reads identity through it.
//
// State machine:
//
//	Unauthenticated --Login ok--> Authenticated (profile pending if the
//	restored file had a token but no profile) --profile fetch ok-->
//	Authenticated; profile fetch failure, Logout, or a 401 on any request
//	all lead back to Unauthenticated.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/util"
)

// FileName is the session file inside the state directory.
const FileName = "session.json"

// persisted is the on-disk shape of a session.
type persisted struct {
	Token string      `json:"token"`
	User  *model.User `json:"user,omitempty"`
}

// Store is the session store. Safe for concurrent use; Bubble Tea commands
// read the token from other goroutines.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *model.User
}

// NewStore creates a store persisting to stateDir.
func NewStore(stateDir string) *Store {
	return &Store{path: filepath.Join(stateDir, FileName)}
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current profile, or nil when none is loaded.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a credential token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// NeedsProfile reports whether a token exists but the profile is still
// pending. Restore leaves the store in this state when the persisted file
// predates profile persistence or was written mid-login.
func (s *Store) NeedsProfile() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user == nil
}

// IsDoctor reports whether the profile carries the elevated role. False
// while the profile is pending.
func (s *Store) IsDoctor() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsDoctor()
}

// Restore loads the persisted session, if any. A missing file leaves the
// store unauthenticated; a corrupt file is treated the same and removed.
// When a token is restored without a profile the caller is expected to
// fetch it (see NeedsProfile) and call SetProfile or Clear.
func (s *Store) Restore() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		os.Remove(s.path)
		return nil
	}

	s.mu.Lock()
	s.token = p.Token
	s.user = p.User
	s.mu.Unlock()
	return nil
}

// Login exchanges credentials for a session. On success the token and
// profile are stored in memory and on disk; on failure nothing changes.
func (s *Store) Login(ctx context.Context, client *api.Client, email, password string) error {
	result, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user := result.User
	s.mu.Lock()
	s.token = result.Token
	s.user = &user
	s.mu.Unlock()

	return s.save()
}

// SetProfile stores a freshly fetched profile and persists it alongside
// the token.
func (s *Store) SetProfile(user model.User) error {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return s.save()
}

// Logout clears the session from memory and disk. No server call is made;
// the token simply stops being presented.
func (s *Store) Logout() {
	s.Clear()
}

// Clear drops the session from memory and disk. Also used when any request
// comes back with an authorization failure.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	os.Remove(s.path)
}

// save writes the current session to disk atomically with owner-only
// permissions. The file holds a live credential.
func (s *Store) save() error {
	s.mu.RLock()
	p := persisted{Token: s.token, User: s.user}
	s.mu.RUnlock()

	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := util.AtomicWriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
