package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	"turftrack/internal/repositories"
	apperrors "turftrack/pkg/errors"

	"go.uber.org/zap"
)

type MessageService struct {
	messageRepository repositories.MessageRepositoryInterface
	listingRepository repositories.ListingRepositoryInterface
	userRepository    repositories.UserRepositoryInterface
	cacheRepository   repositories.CacheRepositoryInterface
	unreadCountTTL    time.Duration
	logger            *zap.Logger
}

func NewMessageService(
	messageRepository repositories.MessageRepositoryInterface,
	listingRepository repositories.ListingRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	unreadCountTTL time.Duration,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		messageRepository: messageRepository,
		listingRepository: listingRepository,
		userRepository:    userRepository,
		cacheRepository:   cacheRepository,
		unreadCountTTL:    unreadCountTTL,
		logger:            logger,
	}
}

// conversationGroup is the pure aggregation result before listing
// enrichment.
type conversationGroup struct {
	ListingID     uint64
	OtherUserID   uint64
	OtherUserName string
	LastMessage   entities.Message
	UnreadCount   int
}

// AggregateConversations reduces the requester's messages (newest first)
// into one group per (listing, counterparty) pair. The first message seen
// for a group is its most recent one; the counterparty's name is taken only
// from messages the counterparty sent; unread counts messages authored by
// the counterparty, addressed to the requester, still unread.
func AggregateConversations(userID uint64, messages []entities.Message) []conversationGroup {
	type key struct {
		listingID   uint64
		otherUserID uint64
	}

	index := make(map[key]int)
	var groups []conversationGroup

	for _, msg := range messages {
		otherUserID := msg.SenderID
		if msg.SenderID == userID {
			otherUserID = msg.ReceiverID
		}
		k := key{listingID: msg.ListingID, otherUserID: otherUserID}

		i, seen := index[k]
		if !seen {
			index[k] = len(groups)
			groups = append(groups, conversationGroup{
				ListingID:   msg.ListingID,
				OtherUserID: otherUserID,
				LastMessage: msg,
			})
			i = len(groups) - 1
		}

		if msg.SenderID == otherUserID {
			if groups[i].OtherUserName == "" {
				groups[i].OtherUserName = msg.SenderName
			}
			if msg.ReceiverID == userID && !msg.IsRead {
				groups[i].UnreadCount++
			}
		}
	}

	return groups
}

// GetConversations builds the inbox view: aggregated groups enriched with
// their listing and equipment. Groups whose listing no longer resolves are
// dropped silently.
func (s *MessageService) GetConversations(ctx context.Context, userID uint64) ([]dto.ConversationDTO, error) {
	messages, err := s.messageRepository.GetMessagesForUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load messages", zap.Uint64("userId", userID), zap.Error(err))
		return nil, err
	}

	groups := AggregateConversations(userID, messages)

	conversations := make([]dto.ConversationDTO, 0, len(groups))
	for _, group := range groups {
		listing, err := s.listingRepository.FindListing(ctx, group.ListingID)
		if err != nil {
			if err == apperrors.ErrNotFound {
				continue
			}
			return nil, err
		}

		conversations = append(conversations, dto.ConversationDTO{
			ListingID:     group.ListingID,
			Listing:       *listing,
			OtherUserID:   group.OtherUserID,
			OtherUserName: group.OtherUserName,
			LastMessage:   group.LastMessage,
			UnreadCount:   group.UnreadCount,
		})
	}
	return conversations, nil
}

func (s *MessageService) GetThread(ctx context.Context, userID uint64, listingID uint64, otherUserID uint64) ([]entities.Message, error) {
	return s.messageRepository.GetThread(ctx, userID, listingID, otherUserID)
}

func (s *MessageService) SendMessage(ctx context.Context, senderID uint64, payload dto.CreateMessageDTO) (*entities.Message, error) {
	if payload.ReceiverID == senderID {
		return nil, apperrors.ErrSelfConversation
	}

	listing, err := s.listingRepository.FindListing(ctx, payload.ListingID)
	if err != nil {
		return nil, err
	}
	// sold listings keep their threads open for handover arrangements,
	// removed ones do not
	if listing.Status == entities.ListingStatusRemoved {
		return nil, apperrors.ErrListingNotActive
	}
	if _, err := s.userRepository.FindByID(ctx, payload.ReceiverID); err != nil {
		return nil, err
	}

	sender, err := s.userRepository.FindByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	msg, err := s.messageRepository.CreateMessage(ctx, payload.ListingID, senderID, sender.FullName(), payload.ReceiverID, payload.Content)
	if err != nil {
		s.logger.Error("failed to create message", zap.Uint64("listingId", payload.ListingID), zap.Error(err))
		return nil, err
	}

	s.invalidateUnreadCount(ctx, payload.ReceiverID)
	return msg, nil
}

// MarkAsRead flips the read flag for one (listing, sender) pair. Idempotent,
// decoupled from message creation.
func (s *MessageService) MarkAsRead(ctx context.Context, userID uint64, payload dto.MarkReadDTO) error {
	if err := s.messageRepository.MarkMessagesAsRead(ctx, userID, payload.ListingID, payload.SenderID); err != nil {
		return err
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

// GetUnreadCount serves the header badge; the client polls it, so the value
// is cached briefly in redis.
func (s *MessageService) GetUnreadCount(ctx context.Context, userID uint64) (int, error) {
	cacheKey := unreadCountCacheKey(userID)

	if cached, err := s.cacheRepository.Get(ctx, cacheKey); err == nil {
		if count, convErr := strconv.Atoi(cached); convErr == nil {
			return count, nil
		}
	}

	count, err := s.messageRepository.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.cacheRepository.Set(ctx, cacheKey, count, s.unreadCountTTL); err != nil {
		s.logger.Warn("failed to cache unread count", zap.Uint64("userId", userID), zap.Error(err))
	}
	return count, nil
}

func (s *MessageService) invalidateUnreadCount(ctx context.Context, userID uint64) {
	if err := s.cacheRepository.Del(ctx, unreadCountCacheKey(userID)); err != nil {
		s.logger.Warn("failed to invalidate unread count cache", zap.Uint64("userId", userID), zap.Error(err))
	}
}

func unreadCountCacheKey(userID uint64) string {
	return fmt.Sprintf("unread_count:%d", userID)
}
