package entities

import "time"

// Message is immutable after creation except for the read flag.
type Message struct {
	ID         uint64    `json:"id"`
	ListingID  uint64    `json:"listing_id"`
	SenderID   uint64    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	ReceiverID uint64    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
