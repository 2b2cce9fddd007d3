package navigation

import "net/url"

// Well-known routes of the client application.
const (
	PathLogin        = "/login"
	PathDashboard    = "/dashboard"
	PathUnauthorized = "/unauthorized"
	PathUsers        = "/users"
	PathAdmin        = "/admin"
)

// ReturnURLParam carries the originally requested path through the login
// redirect so the navigation can be resumed afterwards.
const ReturnURLParam = "returnUrl"

// Target identifies a navigation destination.
type Target struct {
	Path  string
	Query url.Values
}

// NewTarget builds a target without query parameters.
func NewTarget(path string) Target {
	return Target{Path: path}
}

// String renders the target as a path with an optional query string.
func (t Target) String() string {
	if len(t.Query) == 0 {
		return t.Path
	}
	return t.Path + "?" + t.Query.Encode()
}

// Decision is a guard verdict: either allow, or redirect elsewhere.
type Decision struct {
	Allow    bool
	Redirect *Target
}

// Allowed is the verdict that lets a navigation proceed.
func Allowed() Decision {
	return Decision{Allow: true}
}

// RedirectTo is the verdict that denies a navigation and diverts it.
func RedirectTo(target Target) Decision {
	return Decision{Redirect: &target}
}
