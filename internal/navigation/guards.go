package navigation

import (
	"net/url"

	"github.com/webportal/portal-client/internal/core/session"
)

// Guard is a pure predicate evaluated before a navigation commits. Guards
// read the live session at evaluation time and never fail; a denial is
// expressed as a redirect.
type Guard func(target Target) Decision

// AuthGuard admits authenticated sessions. Denied navigations are sent to
// the login route carrying the requested path so it can be resumed.
func AuthGuard(sess *session.Store) Guard {
	return func(target Target) Decision {
		if sess.IsAuthenticated() {
			return Allowed()
		}
		return RedirectTo(Target{
			Path:  PathLogin,
			Query: url.Values{ReturnURLParam: {target.Path}},
		})
	}
}

// GuestGuard admits anonymous sessions only; an already authenticated
// actor has no business on the login page and goes to the dashboard.
func GuestGuard(sess *session.Store) Guard {
	return func(Target) Decision {
		if !sess.IsAuthenticated() {
			return Allowed()
		}
		return RedirectTo(NewTarget(PathDashboard))
	}
}

// AdminGuard admits admin sessions and diverts everyone else to the
// unauthorized view. Routes pair it with AuthGuard so that anonymous
// actors are sent to login first, never to unauthorized.
func AdminGuard(sess *session.Store) Guard {
	return func(Target) Decision {
		if sess.IsAdmin() {
			return Allowed()
		}
		return RedirectTo(NewTarget(PathUnauthorized))
	}
}
