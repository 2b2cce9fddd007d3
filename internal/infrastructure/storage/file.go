// Package storage provides session-record stores: the durable slot that
// survives client restarts. The file store is the default; memory is for
// tests and ephemeral runs.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/webportal/portal-client/internal/core/domain"
)

// DefaultRecordPath returns the conventional location of the session
// record file under the user's configuration directory.
func DefaultRecordPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "portal", "session.json"), nil
}

// FileStore persists the serialized Actor as a single JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the record. A file that cannot be decoded is
// removed and reported as domain.ErrMalformedRecord.
func (f *FileStore) Load(_ context.Context) (*domain.Actor, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNoRecord
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}

	var actor domain.Actor
	if err := json.Unmarshal(raw, &actor); err != nil || actor.Email == "" || !actor.Role.Valid() {
		_ = os.Remove(f.path)
		return nil, domain.ErrMalformedRecord
	}
	return &actor, nil
}

// Save writes the record, creating parent directories as needed.
func (f *FileStore) Save(_ context.Context, actor domain.Actor) error {
	raw, err := json.Marshal(actor)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Clear removes the record. Clearing an absent record is not an error.
func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}
