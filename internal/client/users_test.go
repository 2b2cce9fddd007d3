package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/webportal/portal-client/internal/api"
	"github.com/webportal/portal-client/internal/core/domain"
	"github.com/webportal/portal-client/internal/infrastructure/directory"
	"github.com/webportal/portal-client/internal/navigation"
)

// End-to-end: the users client goes through the mediator to a real mock
// backend, so the minted credential must satisfy the server middleware.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	e := api.NewRouter(directory.NewMemory(directory.SeedUsers()), testSecret, zerolog.Nop())
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestUsersClient_ListAndGet(t *testing.T) {
	srv := newBackend(t)
	p := newPipeline()
	p.signIn(domain.RoleUser)
	users := NewUsersClient(srv.URL, p.http)

	got, err := users.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(got))
	}

	first, err := users.Get(context.Background(), got[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.Name != got[0].Name {
		t.Fatalf("get mismatch: %+v vs %+v", first, got[0])
	}
}

func TestUsersClient_CreateUpdateDelete(t *testing.T) {
	srv := newBackend(t)
	p := newPipeline()
	p.signIn(domain.RoleAdmin)
	users := NewUsersClient(srv.URL, p.http)
	ctx := context.Background()

	created, err := users.Create(ctx, domain.User{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: domain.Company{Name: "Analytical Engines"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("created user must get an id")
	}

	updated, err := users.Update(ctx, created.ID, domain.User{
		Name:  "Ada King",
		Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Ada King" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := users.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := users.Get(ctx, created.ID); FromError(err) == nil || FromError(err).Status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestUsersClient_MissingUserIsNotFound(t *testing.T) {
	srv := newBackend(t)
	p := newPipeline()
	p.signIn(domain.RoleUser)
	users := NewUsersClient(srv.URL, p.http)

	_, err := users.Get(context.Background(), 999)
	reqErr := FromError(err)
	if reqErr == nil || reqErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if reqErr.Message != "resource not found" {
		t.Fatalf("unexpected message: %q", reqErr.Message)
	}
}

func TestUsersClient_AnonymousIsRejectedAndLoggedOut(t *testing.T) {
	srv := newBackend(t)
	p := newPipeline()
	users := NewUsersClient(srv.URL, p.http)

	_, err := users.List(context.Background())
	reqErr := FromError(err)
	if reqErr == nil || reqErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if p.auth.calls != 1 {
		t.Fatalf("401 must force a logout, got %d", p.auth.calls)
	}
}

func TestUsersClient_DeleteIsAdminOnly(t *testing.T) {
	srv := newBackend(t)
	p := newPipeline()
	p.signIn(domain.RoleUser)
	users := NewUsersClient(srv.URL, p.http)

	err := users.Delete(context.Background(), 1)
	reqErr := FromError(err)
	if reqErr == nil || reqErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if !p.sess.IsAuthenticated() {
		t.Fatalf("403 must keep the session")
	}
	if len(p.nav.visited) != 1 || p.nav.visited[0].Path != navigation.PathUnauthorized {
		t.Fatalf("expected unauthorized redirect, got %+v", p.nav.visited)
	}
}

func TestUsersClient_ValidationFailureIsBadRequest(t *testing.T) {
	srv := newBackend(t)
	p := newPipeline()
	p.signIn(domain.RoleAdmin)
	users := NewUsersClient(srv.URL, p.http)

	_, err := users.Create(context.Background(), domain.User{Name: "No Email"})
	reqErr := FromError(err)
	if reqErr == nil || reqErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if reqErr.Message != "invalid request data" {
		t.Fatalf("unexpected message: %q", reqErr.Message)
	}
}
