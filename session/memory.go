package session

import (
	"context"
	"sync"
	"time"

	"github.com/MrEthical07/boardAuth/internal"
)

// MemoryStore keeps token → expiry in a RWMutex-guarded map.
type MemoryStore struct {
	mu       sync.RWMutex
	config   Config
	sessions map[string]time.Time
}

// NewMemory creates an empty process-local [MemoryStore].
func NewMemory(cfg Config) *MemoryStore {
	return &MemoryStore{
		config:   cfg.withDefaults(),
		sessions: make(map[string]time.Time),
	}
}

// Create mints a token expiring TTL from now.
func (s *MemoryStore) Create(_ context.Context) (string, error) {
	token, err := internal.NewSessionToken()
	if err != nil {
		return "", err
	}
	expires := s.config.Clock().Add(s.config.TTL)

	s.mu.Lock()
	s.sessions[token] = expires
	s.mu.Unlock()

	return token, nil
}

// Verify returns true for a present, unexpired token. An expired token is
// deleted on the spot and reported as (false, ErrExpired).
func (s *MemoryStore) Verify(_ context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	now := s.config.Clock()

	s.mu.RLock()
	expires, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if now.Before(expires) {
		return true, nil
	}

	s.mu.Lock()
	// Re-check under the write lock; a concurrent sweep may have won.
	if current, still := s.sessions[token]; still && !now.Before(current) {
		delete(s.sessions, token)
	}
	s.mu.Unlock()

	return false, ErrExpired
}

// Sweep removes expired entries. Candidates are collected under the read lock
// so lookups proceed during the scan; the write lock is held only for deletes.
func (s *MemoryStore) Sweep(_ context.Context) (int, error) {
	now := s.config.Clock()

	s.mu.RLock()
	var expired []string
	for token, expires := range s.sessions {
		if !now.Before(expires) {
			expired = append(expired, token)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return 0, nil
	}

	removed := 0
	s.mu.Lock()
	for _, token := range expired {
		if expires, ok := s.sessions[token]; ok && !now.Before(expires) {
			delete(s.sessions, token)
			removed++
		}
	}
	s.mu.Unlock()

	return removed, nil
}

// Len returns the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
