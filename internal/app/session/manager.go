package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serenity/internal/app/user"
	"serenity/internal/pkg/logx"
	"serenity/internal/pkg/randx"
)

// Manager owns the session lifecycle. It does not verify credentials; callers
// (the auth handlers) check the password against the account collection before
// asking for a session.
type Manager struct {
	sessions Store
	users    user.Store
}

// NewManager builds a Manager over the given stores.
func NewManager(sessions Store, users user.Store) *Manager {
	return &Manager{sessions: sessions, users: users}
}

// Login unconditionally establishes and persists a session for the given
// identity. The profile picture is cached on the session so it survives
// rehydration without touching the account record.
func (m *Manager) Login(ctx context.Context, email, name, profilePicture string) (*Session, error) {
	sess := &Session{
		ID:             randx.SessionID(),
		Email:          email,
		Name:           name,
		ProfilePicture: profilePicture,
		CreatedAt:      time.Now(),
	}

	if err := m.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("establish session: %w", err)
	}

	return sess, nil
}

// Logout destroys the session. It is idempotent: logging out an unknown or
// already-destroyed session leaves the state unchanged and returns nil.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.sessions.Delete(ctx, id)
}

// Resume rehydrates the session with the given ID, cross-checking that the
// account it references still exists. A session pointing at a vanished
// account is destroyed on the spot, so stale state heals itself.
func (m *Manager) Resume(ctx context.Context, id string) (*Session, error) {
	sess, err := m.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := m.users.GetByEmail(ctx, sess.Email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			logx.Warn("Session references a missing account. Forcing logout.", "session_id", id, "email", sess.Email)
			if delErr := m.sessions.Delete(ctx, id); delErr != nil {
				logx.Error(delErr, "Failed to delete orphaned session", "session_id", id)
			}
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sess, nil
}

// UpdateUser merges the patch into both the account record stored under the
// session's e-mail and the session itself, and returns the updated account.
func (m *Manager) UpdateUser(ctx context.Context, id string, p user.Patch) (*user.User, *Session, error) {
	sess, err := m.sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updated, err := m.users.Update(ctx, sess.Email, p)
	if err != nil {
		return nil, nil, err
	}

	sess.Name = updated.Name
	sess.ProfilePicture = updated.ProfilePicture

	if err := m.sessions.Save(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("refresh session after profile update: %w", err)
	}

	return updated, sess, nil
}
