package reservation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on top of a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the given pool in a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) SaveInquiry(ctx context.Context, inq *Inquiry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO reservation_inquiries
		 (id, check_in, check_out, room_type, adults, children, name, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inq.ID, inq.CheckIn, inq.CheckOut, inq.RoomType, inq.Adults, inq.Children,
		inq.Name, inq.Email, inq.Phone, inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation inquiry: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveContactMessage(ctx context.Context, msg *ContactMessage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
