// Package session holds the single source of truth for the current actor.
//
// The store keeps exactly two pieces of state: the authenticated actor (or
// none) and a busy flag raised while an authentication attempt is in
// flight. Authorization facts (IsAuthenticated, IsAdmin) are derived from
// the actor on every call and never stored, so the flag and the identity
// cannot diverge.
package session

import (
	"sync"

	"github.com/webportal/portal-client/internal/core/domain"
)

// Store is the process-wide session state. Mutation happens only through
// SetActor and SetBusy; there is no I/O here, persistence belongs to the
// authenticator.
type Store struct {
	mu    sync.RWMutex
	actor *domain.Actor
	busy  bool
}

// NewStore returns an anonymous, idle session.
func NewStore() *Store {
	return &Store{}
}

// Actor returns a copy of the current actor, or nil when anonymous.
func (s *Store) Actor() *domain.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.actor == nil {
		return nil
	}
	actor := *s.actor
	return &actor
}

// SetActor replaces the current actor. Passing nil clears the session.
func (s *Store) SetActor(actor *domain.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if actor == nil {
		s.actor = nil
		return
	}
	copied := *actor
	s.actor = &copied
}

// Busy reports whether an authentication attempt is in flight.
func (s *Store) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// SetBusy updates the busy flag.
func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

// IsAuthenticated reports whether an actor is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actor != nil
}

// IsAdmin reports whether the current actor holds the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actor != nil && s.actor.Role == domain.RoleAdmin
}
