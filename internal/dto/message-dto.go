package dto

import "turftrack/internal/entities"

type CreateMessageDTO struct {
	ListingID  uint64 `json:"listing_id" validate:"required,gt=0"`
	ReceiverID uint64 `json:"receiver_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required"`
}

type MarkReadDTO struct {
	ListingID uint64 `json:"listing_id" validate:"required,gt=0"`
	SenderID  uint64 `json:"sender_id" validate:"required,gt=0"`
}

// ConversationDTO summarizes one (listing, counterparty) thread for the
// inbox view.
type ConversationDTO struct {
	ListingID     uint64                  `json:"listing_id"`
	Listing       ListingWithEquipmentDTO `json:"listing"`
	OtherUserID   uint64                  `json:"other_user_id"`
	OtherUserName string                  `json:"other_user_name,omitempty"`
	LastMessage   entities.Message        `json:"last_message"`
	UnreadCount   int                     `json:"unread_count"`
}

type UnreadCountDTO struct {
	Count int `json:"count"`
}
