package repositories

import (
	"context"

	"turftrack/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageFields = "id, listing_id, sender_id, sender_name, receiver_id, content, is_read, created_at"

type MessageRepositoryInterface interface {
	GetThread(ctx context.Context, userID uint64, listingID uint64, otherUserID uint64) ([]entities.Message, error)
	GetMessagesForUser(ctx context.Context, userID uint64) ([]entities.Message, error)
	CreateMessage(ctx context.Context, listingID uint64, senderID uint64, senderName string, receiverID uint64, content string) (*entities.Message, error)
	MarkMessagesAsRead(ctx context.Context, userID uint64, listingID uint64, senderID uint64) error
	CountUnread(ctx context.Context, userID uint64) (int, error)
}

type MessageRepository struct {
	storage *pgxpool.Pool
}

func NewMessageRepository(storage *pgxpool.Pool) MessageRepositoryInterface {
	return &MessageRepository{storage: storage}
}

// GetThread returns the two-party conversation on one listing, oldest first.
func (r *MessageRepository) GetThread(ctx context.Context, userID uint64, listingID uint64, otherUserID uint64) ([]entities.Message, error) {
	query := `
		SELECT ` + messageFields + `
		FROM messages
		WHERE listing_id = $1
		  AND ((sender_id = $2 AND receiver_id = $3) OR (sender_id = $3 AND receiver_id = $2))
		ORDER BY created_at ASC`

	return r.queryMessages(ctx, query, listingID, userID, otherUserID)
}

// GetMessagesForUser returns every message the user sent or received,
// newest first. The conversation aggregator depends on this ordering.
func (r *MessageRepository) GetMessagesForUser(ctx context.Context, userID uint64) ([]entities.Message, error) {
	query := `
		SELECT ` + messageFields + `
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC`

	return r.queryMessages(ctx, query, userID)
}

func (r *MessageRepository) CreateMessage(ctx context.Context, listingID uint64, senderID uint64, senderName string, receiverID uint64, content string) (*entities.Message, error) {
	query := `
		INSERT INTO messages (listing_id, sender_id, sender_name, receiver_id, content, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING ` + messageFields

	return scanMessage(r.storage.QueryRow(ctx, query, listingID, senderID, senderName, receiverID, content))
}

// MarkMessagesAsRead flips the read flag for every message on the listing
// sent by senderID to userID. Idempotent; affects no other senders.
func (r *MessageRepository) MarkMessagesAsRead(ctx context.Context, userID uint64, listingID uint64, senderID uint64) error {
	_, err := r.storage.Exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE listing_id = $1 AND sender_id = $2 AND receiver_id = $3`,
		listingID, senderID, userID)
	return err
}

func (r *MessageRepository) CountUnread(ctx context.Context, userID uint64) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT count(*) FROM messages WHERE receiver_id = $1 AND NOT is_read`, userID,
	).Scan(&count)
	return count, err
}

func (r *MessageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]entities.Message, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entities.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

func scanMessage(row pgx.Row) (*entities.Message, error) {
	var msg entities.Message
	err := row.Scan(
		&msg.ID,
		&msg.ListingID,
		&msg.SenderID,
		&msg.SenderName,
		&msg.ReceiverID,
		&msg.Content,
		&msg.IsRead,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
