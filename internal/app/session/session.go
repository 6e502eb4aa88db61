/*
Package session implements device sessions for the account system.

A Session is an explicit server-side record created on login or registration
and destroyed on logout. The Manager owns the lifecycle: establishing,
rehydrating (with a self-healing cross-check against the account collection),
updating, and tearing down sessions. Handlers reach it through dependency
injection; there is no ambient session state.
*/
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a lookup for a session that does not exist (anymore).
var ErrNotFound = errors.New("session not found")

// Session represents one signed-in device.
type Session struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store is the storage port for session records.
type Store interface {
	// Save inserts or replaces the session record.
	Save(ctx context.Context, s *Session) error

	// Get returns the session with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
