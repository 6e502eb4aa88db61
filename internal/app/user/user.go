/*
Package user contains the account record, the storage port for the account
collection, and its PostgreSQL and in-memory implementations.

The e-mail address is the unique key of the collection. Records are created at
registration and mutated in place on profile edits; there is no delete
operation.
*/
package user

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDuplicateEmail reports a Create with an e-mail already on file.
	ErrDuplicateEmail = errors.New("e-mail already registered")

	// ErrNotFound reports a lookup or update for an unknown account.
	ErrNotFound = errors.New("user not found")
)

// User is a registered hotel guest account.
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	PasswordHash   string     `json:"-"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// Patch carries the profile fields a user may change. Nil means "leave as is".
type Patch struct {
	Name           *string
	ProfilePicture *string
}

// Store is the storage port for the account collection. The production
// implementation is PostgresStore; MemoryStore backs the tests.
type Store interface {
	// Create inserts a new account. It fails with ErrDuplicateEmail when the
	// e-mail is already taken.
	Create(ctx context.Context, u *User) error

	// GetByEmail returns the account with the given e-mail or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update merges the patch into the account stored under email and stamps
	// UpdatedAt. It fails with ErrNotFound for an unknown e-mail.
	Update(ctx context.Context, email string, p Patch) (*User, error)

	// UpdatePassword replaces the stored password hash for the account.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
