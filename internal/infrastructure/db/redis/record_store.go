package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/webportal/portal-client/internal/core/domain"
)

// recordKey is the single fixed key holding the session record.
const recordKey = "portal:session"

// RecordStore persists the session record under one Redis key, for
// deployments where the client has no writable filesystem.
type RecordStore struct {
	client *redis.Client
}

func NewRecordStore(client *redis.Client) *RecordStore {
	return &RecordStore{client: client}
}

func (r *RecordStore) Load(ctx context.Context) (*domain.Actor, error) {
	raw, err := r.client.Get(ctx, recordKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoRecord
		}
		return nil, fmt.Errorf("load session record: %w", err)
	}

	var actor domain.Actor
	if err := json.Unmarshal(raw, &actor); err != nil || actor.Email == "" || !actor.Role.Valid() {
		_ = r.client.Del(ctx, recordKey).Err()
		return nil, domain.ErrMalformedRecord
	}
	return &actor, nil
}

func (r *RecordStore) Save(ctx context.Context, actor domain.Actor) error {
	raw, err := json.Marshal(actor)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := r.client.Set(ctx, recordKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *RecordStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, recordKey).Err(); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}
