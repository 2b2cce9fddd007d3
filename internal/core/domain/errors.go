package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email and wrong secret alike;
	// callers must never learn which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrActorNotFound indicates a registry lookup miss.
	ErrActorNotFound = errors.New("actor not found")

	// ErrActorExists indicates a duplicate registry entry.
	ErrActorExists = errors.New("actor already exists")

	// ErrNoRecord indicates that no session record is persisted.
	ErrNoRecord = errors.New("no session record")

	// ErrMalformedRecord indicates a persisted session record that cannot
	// be decoded. The store purges it and the session stays anonymous.
	ErrMalformedRecord = errors.New("malformed session record")

	// ErrUserNotFound indicates a missing directory user.
	ErrUserNotFound = errors.New("user not found")
)
