package ports

import "github.com/webportal/portal-client/internal/navigation"

// Navigator issues navigation redirects on behalf of the session layer
// (logout → login route, forbidden → unauthorized route). The router is
// the production implementation.
type Navigator interface {
	NavigateTo(target navigation.Target)
}
