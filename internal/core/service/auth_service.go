package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/webportal/portal-client/internal/core/domain"
	"github.com/webportal/portal-client/internal/core/ports"
	"github.com/webportal/portal-client/internal/core/session"
	"github.com/webportal/portal-client/internal/metrics"
	"github.com/webportal/portal-client/internal/navigation"
)

const (
	msgLoginSucceeded     = "login succeeded"
	msgInvalidCredentials = "invalid credentials"
)

// AuthService owns every session transition: it validates credentials
// against the registry, mutates the session store, and keeps the persisted
// record in sync. Internal failures (storage, malformed records) are
// logged and absorbed; callers only ever observe well-formed session
// state.
type AuthService struct {
	sess     *session.Store
	registry ports.CredentialRegistry
	records  ports.RecordStore
	nav      ports.Navigator
	latency  time.Duration
	log      zerolog.Logger
}

// NewAuthService wires an authenticator. latency models the round trip of
// a real identity-provider call; pass 0 to disable the wait in tests.
func NewAuthService(
	sess *session.Store,
	registry ports.CredentialRegistry,
	records ports.RecordStore,
	nav ports.Navigator,
	latency time.Duration,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		sess:     sess,
		registry: registry,
		records:  records,
		nav:      nav,
		latency:  latency,
		log:      log,
	}
}

// Login authenticates email/secret against the registry. Unknown email and
// wrong secret produce the identical outward result. The busy flag is
// cleared on every path, and a storage-write failure does not fail a login
// whose session update already succeeded.
func (s *AuthService) Login(ctx context.Context, email, secret string) domain.LoginResult {
	s.sess.SetBusy(true)
	defer s.sess.SetBusy(false)

	s.wait(s.latency)

	cred, err := s.registry.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrActorNotFound) {
			s.log.Warn().Err(err).Msg("credential lookup failed")
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return domain.LoginResult{Success: false, Message: msgInvalidCredentials}
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return domain.LoginResult{Success: false, Message: msgInvalidCredentials}
	}

	actor := cred.Actor
	s.sess.SetActor(&actor)

	if err := s.records.Save(ctx, actor); err != nil {
		// The in-memory session is already authenticated; losing the
		// record only costs persistence across restarts.
		s.log.Error().Err(err).Msg("failed to persist session record")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", actor.Email).Str("role", string(actor.Role)).Msg("login succeeded")
	return domain.LoginResult{Success: true, Message: msgLoginSucceeded}
}

// Logout clears the actor, removes the persisted record, and redirects to
// the login route. Idempotent: when already anonymous only the redirect
// happens.
func (s *AuthService) Logout() {
	s.sess.SetActor(nil)
	if err := s.records.Clear(context.Background()); err != nil {
		s.log.Error().Err(err).Msg("failed to clear session record")
	}
	s.nav.NavigateTo(navigation.NewTarget(navigation.PathLogin))
}

// RestoreFromStorage loads the persisted record at process start. A
// malformed record leaves the session anonymous (the store purges it);
// restore never fails outward.
func (s *AuthService) RestoreFromStorage(ctx context.Context) {
	actor, err := s.records.Load(ctx)
	switch {
	case err == nil:
		s.sess.SetActor(actor)
		metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	case errors.Is(err, domain.ErrNoRecord):
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
	case errors.Is(err, domain.ErrMalformedRecord):
		s.log.Warn().Err(err).Msg("discarded malformed session record")
		metrics.SessionRestoresTotal.WithLabelValues("malformed").Inc()
	default:
		s.log.Error().Err(err).Msg("session restore failed")
	}
}

// HasRole reports whether the current actor covers the given role. Admin
// satisfies every role query; anonymous sessions satisfy none.
func (s *AuthService) HasRole(role domain.Role) bool {
	actor := s.sess.Actor()
	if actor == nil {
		return false
	}
	return actor.Satisfies(role)
}

// Refresh keeps an authenticated session alive by re-validating the actor
// against the registry. A lookup failure forces a logout; an anonymous
// session reports false without side effects.
func (s *AuthService) Refresh(ctx context.Context) bool {
	actor := s.sess.Actor()
	if actor == nil {
		return false
	}

	s.wait(s.latency / 2)

	if _, err := s.registry.FindByEmail(ctx, actor.Email); err != nil {
		s.log.Warn().Err(err).Str("email", actor.Email).Msg("session refresh failed")
		s.Logout()
		return false
	}
	return true
}

// wait blocks for the simulated round trip. Login runs to completion by
// contract, so the wait is not tied to the caller's context.
func (s *AuthService) wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
