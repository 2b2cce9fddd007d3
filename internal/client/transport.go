// Package client implements the request-mediation pipeline: a transport
// that attaches the actor's credential to outbound requests and maps
// failed exchanges onto the fixed failure taxonomy, plus the directory
// client built on top of it.
package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/webportal/portal-client/internal/core/domain"
	"github.com/webportal/portal-client/internal/core/ports"
	"github.com/webportal/portal-client/internal/core/service"
	"github.com/webportal/portal-client/internal/core/session"
	"github.com/webportal/portal-client/internal/metrics"
	"github.com/webportal/portal-client/internal/navigation"
)

// maxErrorBody bounds how much of a failure response is kept as the
// diagnostic cause.
const maxErrorBody = 512

// SessionEnder forces a logout when the backend no longer recognises the
// session. Satisfied by the authenticator.
type SessionEnder interface {
	Logout()
}

// Transport is the two-stage request mediator. Outbound it attaches the
// actor's bearer token and a JSON content type; an anonymous request
// passes through untouched. Inbound it converts every failed exchange
// into a *domain.RequestError, forcing a logout on 401 and a redirect to
// the unauthorized view on 403.
type Transport struct {
	base   http.RoundTripper
	sess   *session.Store
	minter *service.TokenMinter
	auth   SessionEnder
	nav    ports.Navigator
	log    zerolog.Logger
}

// NewTransport builds the mediator. base nil falls back to
// http.DefaultTransport.
func NewTransport(
	base http.RoundTripper,
	sess *session.Store,
	minter *service.TokenMinter,
	auth SessionEnder,
	nav ports.Navigator,
	log zerolog.Logger,
) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, sess: sess, minter: minter, auth: auth, nav: nav, log: log}
}

// NewHTTPClient returns an http.Client routed through the mediator.
func NewHTTPClient(t *Transport) *http.Client {
	return &http.Client{Transport: t}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req
	if actor := t.sess.Actor(); actor != nil {
		token, err := t.minter.Mint(*actor)
		if err != nil {
			// Attaching the credential never blocks a request.
			t.log.Error().Err(err).Msg("token mint failed, sending request unauthenticated")
		} else {
			out = req.Clone(req.Context())
			out.Header.Set("Authorization", "Bearer "+token)
			out.Header.Set("Content-Type", "application/json")
		}
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		reqErr := domain.ClassifyStatus(0, "", err)
		metrics.RequestFailuresTotal.WithLabelValues(reqErr.Class).Inc()
		t.log.Warn().Err(err).Str("url", req.URL.String()).Msg("transport failure")
		return nil, reqErr
	}
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}

	raw := drain(resp)
	reqErr := domain.ClassifyStatus(resp.StatusCode, resp.Status, cause(resp.Status, raw))
	metrics.RequestFailuresTotal.WithLabelValues(reqErr.Class).Inc()

	t.log.Warn().
		Int("status", resp.StatusCode).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("message", reqErr.Message).
		Msg("request failed")

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// The backend no longer honours the session; local state must
		// not keep claiming authentication.
		t.auth.Logout()
	case http.StatusForbidden:
		// Legitimate actor, insufficient privilege. Session stays.
		t.nav.NavigateTo(navigation.NewTarget(navigation.PathUnauthorized))
	}

	return nil, reqErr
}

// FromError extracts the normalized request error from an error chain,
// unwrapping the url.Error layer added by http.Client. Returns nil when
// the chain carries none.
func FromError(err error) *domain.RequestError {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	return nil
}

func drain(resp *http.Response) string {
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func cause(status, body string) error {
	if body == "" {
		return errors.New(status)
	}
	return fmt.Errorf("%s: %s", status, body)
}
