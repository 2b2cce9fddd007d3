package registry

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/webportal/portal-client/internal/core/domain"
)

func TestStatic_FindByEmail(t *testing.T) {
	reg, err := NewStatic(DemoEntries())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	cred, err := reg.FindByEmail(context.Background(), "admin@angular.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if cred.Actor.Role != domain.RoleAdmin || cred.Actor.ID != 1 {
		t.Fatalf("unexpected actor: %+v", cred.Actor)
	}
	if cred.SecretHash == "admin123" {
		t.Fatalf("secret must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte("admin123")) != nil {
		t.Fatalf("hash does not match the seeded secret")
	}
}

func TestStatic_UnknownEmail(t *testing.T) {
	reg, err := NewStatic(DemoEntries())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	if _, err := reg.FindByEmail(context.Background(), "nobody@angular.com"); !errors.Is(err, domain.ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound, got %v", err)
	}
}

func TestStatic_RejectsDuplicateEmail(t *testing.T) {
	entries := []Entry{
		{Secret: "x", Actor: domain.Actor{ID: 1, Email: "dup@angular.com", Role: domain.RoleUser}},
		{Secret: "y", Actor: domain.Actor{ID: 2, Email: "dup@angular.com", Role: domain.RoleGuest}},
	}
	if _, err := NewStatic(entries); !errors.Is(err, domain.ErrActorExists) {
		t.Fatalf("expected ErrActorExists, got %v", err)
	}
}

func TestStatic_CredentialsExposesAllEntries(t *testing.T) {
	reg, err := NewStatic(DemoEntries())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	if got := len(reg.Credentials()); got != 3 {
		t.Fatalf("expected 3 credentials, got %d", got)
	}
}
