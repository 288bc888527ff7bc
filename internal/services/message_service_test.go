package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	apperrors "turftrack/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMessageRepo struct {
	created     *entities.Message
	markedRead  bool
	unreadCount int
	countCalls  int
}

func (s *stubMessageRepo) GetThread(ctx context.Context, userID uint64, listingID uint64, otherUserID uint64) ([]entities.Message, error) {
	return nil, nil
}

func (s *stubMessageRepo) GetMessagesForUser(ctx context.Context, userID uint64) ([]entities.Message, error) {
	return nil, nil
}

func (s *stubMessageRepo) CreateMessage(ctx context.Context, listingID uint64, senderID uint64, senderName string, receiverID uint64, content string) (*entities.Message, error) {
	msg := &entities.Message{
		ID:         1,
		ListingID:  listingID,
		SenderID:   senderID,
		SenderName: senderName,
		ReceiverID: receiverID,
		Content:    content,
	}
	s.created = msg
	return msg, nil
}

func (s *stubMessageRepo) MarkMessagesAsRead(ctx context.Context, userID uint64, listingID uint64, senderID uint64) error {
	s.markedRead = true
	return nil
}

func (s *stubMessageRepo) CountUnread(ctx context.Context, userID uint64) (int, error) {
	s.countCalls++
	return s.unreadCount, nil
}

type memoryCacheRepo struct {
	values map[string]string
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: make(map[string]string)}
}

func (c *memoryCacheRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("cache miss: %s", key)
	}
	return v, nil
}

func (c *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *memoryCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

type messageFixture struct {
	svc         *MessageService
	messageRepo *stubMessageRepo
	listingRepo *stubListingRepo
	cache       *memoryCacheRepo
}

func newMessageFixture() messageFixture {
	messageRepo := &stubMessageRepo{}
	listingRepo := &stubListingRepo{}
	userRepo := &twoUserRepo{}
	cache := newMemoryCacheRepo()
	svc := NewMessageService(messageRepo, listingRepo, userRepo, cache, 30*time.Second, zap.NewNop())
	return messageFixture{svc: svc, messageRepo: messageRepo, listingRepo: listingRepo, cache: cache}
}

// twoUserRepo knows users 1 and 2.
type twoUserRepo struct{}

func (r *twoUserRepo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	return nil, apperrors.ErrEmailTaken
}

func (r *twoUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (r *twoUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	switch id {
	case 1:
		return &entities.User{ID: 1, FirstName: "Bob", LastName: "Buyer"}, nil
	case 2:
		return &entities.User{ID: 2, FirstName: "Sam", LastName: "Seller"}, nil
	}
	return nil, apperrors.ErrNotFound
}

type foundListingRepo struct {
	stubListingRepo
	status string
}

func (r *foundListingRepo) FindListing(ctx context.Context, id uint64) (*dto.ListingWithEquipmentDTO, error) {
	status := r.status
	if status == "" {
		status = entities.ListingStatusActive
	}
	return &dto.ListingWithEquipmentDTO{
		Listing: entities.Listing{ID: id, SellerID: 2, Status: status},
	}, nil
}

func TestSendMessage_RejectsSelfConversation(t *testing.T) {
	f := newMessageFixture()

	_, err := f.svc.SendMessage(context.Background(), 1, dto.CreateMessageDTO{
		ListingID:  10,
		ReceiverID: 1,
		Content:    "hello me",
	})

	assert.ErrorIs(t, err, apperrors.ErrSelfConversation)
	assert.Nil(t, f.messageRepo.created)
}

func TestSendMessage_RejectsUnknownListing(t *testing.T) {
	f := newMessageFixture()

	_, err := f.svc.SendMessage(context.Background(), 1, dto.CreateMessageDTO{
		ListingID:  10,
		ReceiverID: 2,
		Content:    "is this still available?",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, f.messageRepo.created)
}

func TestSendMessage_RejectsRemovedListing(t *testing.T) {
	messageRepo := &stubMessageRepo{}
	listingRepo := &foundListingRepo{status: entities.ListingStatusRemoved}
	svc := NewMessageService(messageRepo, listingRepo, &twoUserRepo{}, newMemoryCacheRepo(), 30*time.Second, zap.NewNop())

	_, err := svc.SendMessage(context.Background(), 1, dto.CreateMessageDTO{
		ListingID:  10,
		ReceiverID: 2,
		Content:    "is this still available?",
	})

	assert.ErrorIs(t, err, apperrors.ErrListingNotActive)
	assert.Nil(t, messageRepo.created)
}

func TestSendMessage_AllowsSoldListing(t *testing.T) {
	messageRepo := &stubMessageRepo{}
	listingRepo := &foundListingRepo{status: entities.ListingStatusSold}
	svc := NewMessageService(messageRepo, listingRepo, &twoUserRepo{}, newMemoryCacheRepo(), 30*time.Second, zap.NewNop())

	_, err := svc.SendMessage(context.Background(), 1, dto.CreateMessageDTO{
		ListingID:  10,
		ReceiverID: 2,
		Content:    "when can I pick it up?",
	})

	require.NoError(t, err)
}

func TestSendMessage_StampsSenderNameAndInvalidatesReceiverCache(t *testing.T) {
	messageRepo := &stubMessageRepo{}
	cache := newMemoryCacheRepo()
	cache.Set(context.Background(), "unread_count:2", 5, time.Minute)
	svc := NewMessageService(messageRepo, &foundListingRepo{}, &twoUserRepo{}, cache, 30*time.Second, zap.NewNop())

	msg, err := svc.SendMessage(context.Background(), 1, dto.CreateMessageDTO{
		ListingID:  10,
		ReceiverID: 2,
		Content:    "is this still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bob Buyer", msg.SenderName)
	_, err = cache.Get(context.Background(), "unread_count:2")
	assert.Error(t, err, "receiver's cached unread count must be dropped")
}

func TestGetUnreadCount_CachesResult(t *testing.T) {
	f := newMessageFixture()
	f.messageRepo.unreadCount = 3

	count, err := f.svc.GetUnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, f.messageRepo.countCalls)

	count, err = f.svc.GetUnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, f.messageRepo.countCalls, "second read must be served from cache")
}

func TestMarkAsRead_InvalidatesOwnCache(t *testing.T) {
	f := newMessageFixture()
	f.cache.Set(context.Background(), "unread_count:1", 4, time.Minute)

	err := f.svc.MarkAsRead(context.Background(), 1, dto.MarkReadDTO{ListingID: 10, SenderID: 2})

	require.NoError(t, err)
	assert.True(t, f.messageRepo.markedRead)
	_, err = f.cache.Get(context.Background(), "unread_count:1")
	assert.Error(t, err)
}
