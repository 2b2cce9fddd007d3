package ports

import (
	"context"

	"github.com/webportal/portal-client/internal/core/domain"
)

// CredentialRegistry resolves an email to its credential entry. It stands
// in for a remote identity provider; implementations must return
// domain.ErrActorNotFound on a miss and never reveal more than that.
type CredentialRegistry interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
