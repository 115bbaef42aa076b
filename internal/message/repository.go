// AngelaMos | 2026
// repository.go

package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/efarmlink/efarmlink-api/internal/core"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(repo Repository) error) error
	Create(ctx context.Context, m *Message) error
	OrderParties(ctx context.Context, orderID string) (*OrderParties, error)
	Thread(ctx context.Context, userID, otherID string) ([]ThreadMessage, error)
	MarkRead(ctx context.Context, senderID, receiverID string) (int64, error)
	Conversations(ctx context.Context, userID string) ([]Conversation, error)
}

type repository struct {
	db   core.DBTX
	root *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db, root: db}
}

func (r *repository) WithTx(
	ctx context.Context,
	fn func(repo Repository) error,
) error {
	if r.root == nil {
		return fn(r)
	}

	return core.InTx(ctx, r.root, func(tx *sqlx.Tx) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, message_text, product_id, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING is_read, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		m.ID,
		m.SenderID,
		m.ReceiverID,
		m.MessageText,
		m.ProductID,
		m.OrderID,
	).Scan(&m.IsRead, &m.CreatedAt)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("create message: %w", core.ErrNotFound)
		}
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *repository) OrderParties(
	ctx context.Context,
	orderID string,
) (*OrderParties, error) {
	query := `SELECT buyer_id, farmer_id FROM orders WHERE id = $1`

	var p OrderParties
	err := r.db.GetContext(ctx, &p, query, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order parties: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order parties: %w", err)
	}

	return &p, nil
}

func (r *repository) Thread(
	ctx context.Context,
	userID, otherID string,
) ([]ThreadMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.message_text, m.product_id,
		       m.order_id, m.is_read, m.created_at, u.name AS sender_name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC, m.id ASC`

	msgs := []ThreadMessage{}
	if err := r.db.SelectContext(ctx, &msgs, query, userID, otherID); err != nil {
		return nil, fmt.Errorf("list thread: %w", err)
	}

	return msgs, nil
}

func (r *repository) MarkRead(
	ctx context.Context,
	senderID, receiverID string,
) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE sender_id = $1 AND receiver_id = $2 AND is_read = FALSE`

	result, err := r.db.ExecContext(ctx, query, senderID, receiverID)
	if err != nil {
		return 0, fmt.Errorf("mark read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark read: %w", err)
	}

	return rows, nil
}

func (r *repository) Conversations(
	ctx context.Context,
	userID string,
) ([]Conversation, error) {
	query := `
		SELECT c.other_user_id, u.name AS other_user_name,
		       c.last_message_time, c.unread_count
		FROM (
			SELECT CASE WHEN m.sender_id = $1 THEN m.receiver_id
			            ELSE m.sender_id END AS other_user_id,
			       MAX(m.created_at) AS last_message_time,
			       COUNT(*) FILTER (
			           WHERE m.receiver_id = $1 AND NOT m.is_read
			       ) AS unread_count
			FROM messages m
			WHERE m.sender_id = $1 OR m.receiver_id = $1
			GROUP BY 1
		) c
		JOIN users u ON u.id = c.other_user_id
		ORDER BY c.last_message_time DESC`

	convs := []Conversation{}
	if err := r.db.SelectContext(ctx, &convs, query, userID); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return convs, nil
}
