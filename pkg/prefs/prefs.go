// Package prefs keeps per-user bot preferences in memory. The store is
// process-scoped and lost on restart, a persistent implementation can be
// substituted behind the bot.Store interface without touching routing logic.
package prefs

import (
	"slices"
	"sync"
)

// Preference is the stored state for a single user.
type Preference struct {
	Domain string
}

// Store is a concurrency-safe map of user ID to preference. Updates are
// single-key last-write-wins, rapid button presses from the same user may
// race and the last one sticks.
type Store struct {
	mu    sync.RWMutex
	users map[int64]Preference
}

// NewStore creates an empty preference store.
func NewStore() *Store {
	return &Store{users: make(map[int64]Preference)}
}

// Get returns the user's preference, validated against the current domain
// allow-list. A missing user or a stored domain no longer in the list yields
// the first allowed domain, never an error.
func (s *Store) Get(userID int64, allowed []string) Preference {
	s.mu.RLock()
	p, ok := s.users[userID]
	s.mu.RUnlock()

	if ok && slices.Contains(allowed, p.Domain) {
		return p
	}
	if len(allowed) == 0 {
		return Preference{}
	}
	return Preference{Domain: allowed[0]}
}

// Set merges the domain into the user's preference and returns the result.
// The caller validates the domain against the allow-list before calling.
func (s *Store) Set(userID int64, domain string) Preference {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.users[userID]
	p.Domain = domain
	s.users[userID] = p
	return p
}
