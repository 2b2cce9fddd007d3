package navigation

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/webportal/portal-client/internal/core/session"
)

func newTestRouter(sess *session.Store) *Router {
	r := NewRouter(zerolog.Nop())
	r.Register(PathLogin, GuestGuard(sess))
	r.Register(PathUnauthorized)
	r.Register(PathDashboard, AuthGuard(sess))
	r.Register(PathUsers, AuthGuard(sess))
	r.Register(PathAdmin, AuthGuard(sess), AdminGuard(sess))
	return r
}

func TestRouter_GuardChainShortCircuits(t *testing.T) {
	sess := session.NewStore()
	r := newTestRouter(sess)

	d := r.Resolve(NewTarget(PathAdmin))
	if d.Allow || d.Redirect.Path != PathLogin {
		t.Fatalf("anonymous admin navigation must divert to login, got %+v", d)
	}

	sess.SetActor(userActor())
	d = r.Resolve(NewTarget(PathAdmin))
	if d.Allow || d.Redirect.Path != PathUnauthorized {
		t.Fatalf("non-admin must divert to unauthorized, got %+v", d)
	}

	sess.SetActor(adminActor())
	if d := r.Resolve(NewTarget(PathAdmin)); !d.Allow {
		t.Fatalf("admin must pass the full chain, got %+v", d)
	}
}

func TestRouter_UnknownPathFallsBackToDashboard(t *testing.T) {
	sess := session.NewStore()
	sess.SetActor(userActor())
	r := newTestRouter(sess)

	r.NavigateTo(NewTarget("/no-such-route"))
	if got := r.Current().Path; got != PathDashboard {
		t.Fatalf("expected dashboard fallback, got %q", got)
	}
}

func TestRouter_NavigateFollowsRedirects(t *testing.T) {
	sess := session.NewStore()
	r := newTestRouter(sess)

	// Anonymous: /users → /login (guest guard allows).
	r.NavigateTo(NewTarget(PathUsers))
	if got := r.Current(); got.Path != PathLogin || got.Query.Get(ReturnURLParam) != PathUsers {
		t.Fatalf("expected login with returnUrl, got %+v", got)
	}

	// Authenticated: /login → /dashboard.
	sess.SetActor(userActor())
	r.NavigateTo(NewTarget(PathLogin))
	if got := r.Current().Path; got != PathDashboard {
		t.Fatalf("expected dashboard, got %q", got)
	}
}

func TestRouter_RedirectChainIsBounded(t *testing.T) {
	r := NewRouter(zerolog.Nop())
	// Two routes that bounce navigations at each other forever.
	r.Register("/a", func(Target) Decision { return RedirectTo(NewTarget("/b")) })
	r.Register("/b", func(Target) Decision { return RedirectTo(NewTarget("/a")) })

	// Must terminate despite the cycle.
	r.NavigateTo(NewTarget("/a"))
}
