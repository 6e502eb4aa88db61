package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"serenity/internal/app/db"
)

// PostgresStore implements Store on top of a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the given pool in a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, profile_picture)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Email, u.Name, u.PasswordHash, u.ProfilePicture,
	)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}

	row := s.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, profile_picture, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)

	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) Update(ctx context.Context, email string, p Patch) (*User, error) {
	u := &User{}

	row := s.pool.QueryRow(ctx,
		`UPDATE users
		 SET name            = COALESCE($2, name),
		     profile_picture = COALESCE($3, profile_picture),
		     updated_at      = $4
		 WHERE email = $1
		 RETURNING id, email, name, password_hash, profile_picture, created_at, updated_at`,
		email, p.Name, p.ProfilePicture, time.Now(),
	)

	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE email = $1`,
		email, passwordHash, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
