package ports

import (
	"context"

	"github.com/webportal/portal-client/internal/core/domain"
)

// RecordStore persists the serialized Actor between runs. One record per
// client; written on login, removed on logout, read once at startup.
//
// Load returns domain.ErrNoRecord when nothing is persisted and
// domain.ErrMalformedRecord when the stored value cannot be decoded
// (implementations purge the record before returning it).
type RecordStore interface {
	Load(ctx context.Context) (*domain.Actor, error)
	Save(ctx context.Context, actor domain.Actor) error
	Clear(ctx context.Context) error
}
