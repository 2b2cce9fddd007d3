// Package navigation implements the client-side route table: guards
// evaluated before a navigation commits, and a router that owns the guard
// chains and tracks the current location.
package navigation

import (
	"sync"

	"github.com/rs/zerolog"
)

// maxRedirects bounds redirect chains so a misconfigured route table
// cannot loop forever.
const maxRedirects = 8

type route struct {
	path   string
	guards []Guard
}

// Router owns the route table and the current location. It satisfies the
// Navigator port used by the authenticator and the request mediator.
type Router struct {
	mu       sync.RWMutex
	routes   map[string]*route
	current  Target
	fallback string
	log      zerolog.Logger
}

// NewRouter returns a router whose unknown-path fallback is the dashboard.
func NewRouter(log zerolog.Logger) *Router {
	return &Router{
		routes:   make(map[string]*route),
		fallback: PathDashboard,
		log:      log,
	}
}

// Register adds a route with its guard chain. Guards run in the declared
// order and short-circuit on the first denial.
func (r *Router) Register(path string, guards ...Guard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[path] = &route{path: path, guards: guards}
}

// Resolve evaluates the guard chain for a single target without following
// redirects. Unknown paths redirect to the fallback route.
func (r *Router) Resolve(target Target) Decision {
	r.mu.RLock()
	rt, ok := r.routes[target.Path]
	r.mu.RUnlock()
	if !ok {
		return RedirectTo(NewTarget(r.fallback))
	}
	for _, guard := range rt.guards {
		if decision := guard(target); !decision.Allow {
			return decision
		}
	}
	return Allowed()
}

// NavigateTo resolves the target, following redirects up to maxRedirects,
// and records the location actually reached as current.
func (r *Router) NavigateTo(target Target) {
	current := target
	for i := 0; i < maxRedirects; i++ {
		decision := r.Resolve(current)
		if decision.Allow {
			r.setCurrent(current)
			return
		}
		r.log.Debug().
			Str("from", current.String()).
			Str("to", decision.Redirect.String()).
			Msg("navigation redirected")
		current = *decision.Redirect
	}
	r.log.Warn().Str("target", target.String()).Msg("redirect limit reached")
	r.setCurrent(current)
}

// Current returns the last committed location.
func (r *Router) Current() Target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) setCurrent(target Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = target
}
