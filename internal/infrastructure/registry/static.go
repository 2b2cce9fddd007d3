// Package registry provides the in-process credential registry: a static
// lookup table standing in for a remote identity provider.
package registry

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/webportal/portal-client/internal/core/domain"
)

// Entry pairs a plaintext secret with the actor issued when it matches.
// Secrets are hashed at registry construction; the plaintext is never
// retained.
type Entry struct {
	Secret string
	Actor  domain.Actor
}

// Static is an immutable in-memory credential registry.
type Static struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

// NewStatic builds a registry from entries, hashing each secret.
func NewStatic(entries []Entry) (*Static, error) {
	creds := make(map[string]domain.Credential, len(entries))
	for _, e := range entries {
		if _, dup := creds[e.Actor.Email]; dup {
			return nil, fmt.Errorf("registry: %w: %s", domain.ErrActorExists, e.Actor.Email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(e.Secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("registry: hash secret: %w", err)
		}
		creds[e.Actor.Email] = domain.Credential{SecretHash: string(hash), Actor: e.Actor}
	}
	return &Static{creds: creds}, nil
}

// FindByEmail resolves the credential for an email.
func (s *Static) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[email]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	return &cred, nil
}

// Credentials returns all entries, used to seed external registries.
func (s *Static) Credentials() []domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Credential, 0, len(s.creds))
	for _, cred := range s.creds {
		out = append(out, cred)
	}
	return out
}

// DemoEntries is the well-known demo credential table.
func DemoEntries() []Entry {
	return []Entry{
		{
			Secret: "admin123",
			Actor:  domain.Actor{ID: 1, Email: "admin@angular.com", DisplayName: "Administrator", Role: domain.RoleAdmin},
		},
		{
			Secret: "user123",
			Actor:  domain.Actor{ID: 2, Email: "user@angular.com", DisplayName: "Regular User", Role: domain.RoleUser},
		},
		{
			Secret: "guest123",
			Actor:  domain.Actor{ID: 3, Email: "guest@angular.com", DisplayName: "Guest", Role: domain.RoleGuest},
		},
	}
}
